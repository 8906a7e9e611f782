package service

import "errors"

var (
	// ErrInvalidVehicleID is returned when vehicle ID is empty.
	ErrInvalidVehicleID = errors.New("invalid vehicle id")

	// ErrInvalidPlate is returned when a vehicle plate is empty.
	ErrInvalidPlate = errors.New("invalid plate")

	// ErrUnknownCategory is returned when a vehicle category has no configured rate.
	ErrUnknownCategory = errors.New("unknown vehicle category")

	// ErrVehicleNotInside is returned when settlement is attempted on a vehicle that already exited.
	ErrVehicleNotInside = errors.New("vehicle is not inside the parking lot")

	// ErrVehicleAlreadyInside is returned when a plate is registered while still inside.
	ErrVehicleAlreadyInside = errors.New("vehicle with this plate is already inside")

	// ErrParkingFull is returned when an entry would exceed the configured capacity.
	ErrParkingFull = errors.New("parking lot is at maximum capacity")

	// ErrEntryInFuture is returned when a vehicle's entry timestamp is after the settlement time.
	ErrEntryInFuture = errors.New("entry timestamp is in the future")

	// ErrOperationAlreadyOpen is returned when starting a day that is already open.
	ErrOperationAlreadyOpen = errors.New("operations day already open")

	// ErrOperationNotOpen is returned when closing while no day is open.
	ErrOperationNotOpen = errors.New("no open operations day")

	// ErrOperationLocked is returned when a concurrent day transition holds the lock.
	ErrOperationLocked = errors.New("operations day transition in progress")

	// ErrInvalidOperationID is returned when an operations day ID is empty.
	ErrInvalidOperationID = errors.New("invalid operations day id")

	// ErrInvalidDebtID is returned when a debt ID is empty.
	ErrInvalidDebtID = errors.New("invalid debt id")

	// ErrDebtAlreadyPaid is returned when paying a debt that is already settled.
	ErrDebtAlreadyPaid = errors.New("debt already paid")

	// ErrInvalidAmount is returned when a manual accounting amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRecordKind is returned when a manual entry is not income or expense.
	ErrInvalidRecordKind = errors.New("invalid record kind")

	// ErrInvalidDateRange is returned when a report date range is malformed.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidSubscriber is returned when subscriber fields are missing or malformed.
	ErrInvalidSubscriber = errors.New("invalid subscriber")

	// ErrInvalidIncident is returned when incident fields are missing.
	ErrInvalidIncident = errors.New("invalid incident")

	// ErrIncidentResolved is returned when resolving an already resolved incident.
	ErrIncidentResolved = errors.New("incident already resolved")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserInactive is returned when a deactivated user logs in.
	ErrUserInactive = errors.New("user is inactive")

	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidRegistration is returned when signup fields are missing.
	ErrInvalidRegistration = errors.New("invalid registration")

	// ErrInvalidSettings is returned when settings fail validation.
	ErrInvalidSettings = errors.New("invalid settings")
)
