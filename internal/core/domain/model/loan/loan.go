package loan

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/pkg/errs"
)

const minutesPerBilledHour = 60

// ErrLoanIsNotConstructed is returned when a Loan instance was not created
// through the NewLoan or RestoreLoan factory methods.
var ErrLoanIsNotConstructed = errors.New("Loan must be created via NewLoan or RestoreLoan constructors")

// Business-rule codes reported by lifecycle transitions.
const (
	// RuleLoanNotActive is reported when a transition requires a running
	// (ACTIVE or OVERDUE) loan.
	RuleLoanNotActive = "LOAN_NOT_ACTIVE"

	// RuleInvalidExtension is reported when an extension target date is not
	// strictly after the current end date, or no end date exists to extend.
	RuleInvalidExtension = "INVALID_EXTENSION"

	// RuleLoanNotOverdue is reported when marking overdue a loan whose end
	// date has not passed.
	RuleLoanNotOverdue = "LOAN_NOT_OVERDUE"
)

// Loan is the aggregate root for a rental session. It references the renter,
// the vehicle and the stations by identifier only.
//
// Invariants:
//   - User, transport and origin station identifiers are valid.
//   - A loan starts ACTIVE with a zero total cost.
//   - COMPLETED and CANCELLED are terminal; cost is frozen at completion.
//   - An end date, when present, is strictly after the start date.
type Loan struct {
	id                   kernel.ID
	userID               kernel.ID
	transportID          kernel.ID
	originStationID      kernel.ID
	destinationStationID *kernel.ID
	startDate            time.Time
	endDate              *time.Time
	totalCost            kernel.Money
	status               Status
	paymentMethod        PaymentMethod

	isConstructed bool
}

// Update is the state-transition result of a lifecycle method: it names
// exactly the fields that change plus the new status. Nil fields and a zero
// Status mean "unchanged". Callers merge it through Apply; nothing mutates
// the original Loan.
type Update struct {
	Status               Status
	DestinationStationID *kernel.ID
	EndDate              *time.Time
	TotalCost            *kernel.Money
}

// NewLoan creates a fresh, not yet persisted rental session. New loans start
// ACTIVE with a zero cost in the default currency; expectedEndDate, when
// given, must be strictly after startDate.
func NewLoan(
	userID kernel.ID,
	transportID kernel.ID,
	originStationID kernel.ID,
	paymentMethod PaymentMethod,
	startDate time.Time,
	expectedEndDate *time.Time,
) (*Loan, error) {
	zeroCost, err := kernel.Zero(kernel.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	l := &Loan{
		status:        StatusActive,
		totalCost:     zeroCost,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setUserID(userID),
		l.setTransportID(transportID),
		l.setOriginStationID(originStationID),
		l.setPaymentMethod(paymentMethod),
		l.setStartDate(startDate),
	); err != nil {
		return nil, err
	}

	if err := l.setEndDate(expectedEndDate); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoan rehydrates a persisted rental session. Unlike NewLoan it
// requires a valid identifier and accepts the stored status, cost and dates.
func RestoreLoan(
	id kernel.ID,
	userID kernel.ID,
	transportID kernel.ID,
	originStationID kernel.ID,
	destinationStationID *kernel.ID,
	startDate time.Time,
	endDate *time.Time,
	totalCost kernel.Money,
	status Status,
	paymentMethod PaymentMethod,
) (*Loan, error) {
	l := &Loan{
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setUserID(userID),
		l.setTransportID(transportID),
		l.setOriginStationID(originStationID),
		l.setDestinationStationID(destinationStationID),
		l.setStartDate(startDate),
		l.setTotalCost(totalCost),
		l.setStatus(status),
		l.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if err := l.setEndDate(endDate); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Loan was created through a factory method.
func (l *Loan) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoanIsNotConstructed
	}
	return nil
}

// IsEqual compares two loans by identifier.
func (l *Loan) IsEqual(other *Loan) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the loan's identifier. Zero means not yet persisted.
func (l *Loan) ID() kernel.ID {
	return l.id
}

// UserID returns the renter's identifier.
func (l *Loan) UserID() kernel.ID {
	return l.userID
}

// TransportID returns the rented vehicle's identifier.
func (l *Loan) TransportID() kernel.ID {
	return l.transportID
}

// OriginStationID returns the station the rental started at.
func (l *Loan) OriginStationID() kernel.ID {
	return l.originStationID
}

// DestinationStationID returns the station the rental ended at, or nil while
// the rental is running.
func (l *Loan) DestinationStationID() *kernel.ID {
	return l.destinationStationID
}

// StartDate returns when the rental started.
func (l *Loan) StartDate() time.Time {
	return l.startDate
}

// EndDate returns the (expected or actual) end of the rental, or nil.
func (l *Loan) EndDate() *time.Time {
	return l.endDate
}

// TotalCost returns the billed cost. Zero until completion.
func (l *Loan) TotalCost() kernel.Money {
	return l.totalCost
}

// Status returns the lifecycle state.
func (l *Loan) Status() Status {
	return l.status
}

// PaymentMethod returns the payment instrument.
func (l *Loan) PaymentMethod() PaymentMethod {
	return l.paymentMethod
}

// IsActive reports whether the rental is still running on schedule.
func (l *Loan) IsActive() bool {
	return l.status == StatusActive
}

// IsRunning reports whether the renter still holds the transport: the rental
// is ACTIVE or OVERDUE. Running rentals can be completed or cancelled and
// block the renter from opening another loan.
func (l *Loan) IsRunning() bool {
	return l.status == StatusActive || l.status == StatusOverdue
}

// Complete ends the rental at the given destination station and time,
// billing the elapsed duration at hourlyRate with ceiling-hour rounding.
// Fails unless the loan is running (ACTIVE or OVERDUE) and endDate is
// strictly after the start.
func (l *Loan) Complete(
	destinationStationID kernel.ID,
	endDate time.Time,
	hourlyRate kernel.Money,
) (Update, error) {
	if err := l.Validate(); err != nil {
		return Update{}, err
	}
	if err := destinationStationID.Validate(); err != nil {
		return Update{}, err
	}
	if !l.IsRunning() {
		return Update{}, errs.NewBusinessRuleViolationError(RuleLoanNotActive,
			fmt.Sprintf("cannot complete a %s loan", l.status))
	}
	if !endDate.After(l.startDate) {
		return Update{}, errs.NewValueIsInvalidErrorWithCause("endDate",
			errors.New("end date must be after start date"))
	}

	cost, err := billCost(hourlyRate, kernel.DurationBetween(l.startDate, endDate))
	if err != nil {
		return Update{}, err
	}

	return Update{
		Status:               StatusCompleted,
		DestinationStationID: &destinationStationID,
		EndDate:              &endDate,
		TotalCost:            &cost,
	}, nil
}

// Cancel aborts the rental. Fails unless the loan is running (ACTIVE or
// OVERDUE); the cost stays untouched.
func (l *Loan) Cancel() (Update, error) {
	if err := l.Validate(); err != nil {
		return Update{}, err
	}
	if !l.IsRunning() {
		return Update{}, errs.NewBusinessRuleViolationError(RuleLoanNotActive,
			fmt.Sprintf("cannot cancel a %s loan", l.status))
	}

	return Update{Status: StatusCancelled}, nil
}

// Extend moves the expected end date of a running rental. Fails unless the
// loan is running, already carries an end date, and newEndDate is strictly
// later than it. Extending an OVERDUE rental reinstates it as ACTIVE.
func (l *Loan) Extend(newEndDate time.Time) (Update, error) {
	if err := l.Validate(); err != nil {
		return Update{}, err
	}
	if !l.IsRunning() {
		return Update{}, errs.NewBusinessRuleViolationError(RuleLoanNotActive,
			fmt.Sprintf("cannot extend a %s loan", l.status))
	}
	if l.endDate == nil {
		return Update{}, errs.NewBusinessRuleViolationError(RuleInvalidExtension,
			"loan has no end date to extend")
	}
	if !newEndDate.After(*l.endDate) {
		return Update{}, errs.NewBusinessRuleViolationError(RuleInvalidExtension,
			"new end date must be after the current end date")
	}

	update := Update{EndDate: &newEndDate}
	if l.status == StatusOverdue {
		update.Status = StatusActive
	}
	return update, nil
}

// MarkOverdue flags a running rental whose end date has passed. Used by the
// overdue sweep, not by renter actions.
func (l *Loan) MarkOverdue(now time.Time) (Update, error) {
	if err := l.Validate(); err != nil {
		return Update{}, err
	}
	if l.status != StatusActive {
		return Update{}, errs.NewBusinessRuleViolationError(RuleLoanNotActive,
			fmt.Sprintf("cannot mark a %s loan overdue", l.status))
	}
	if l.endDate == nil || !now.After(*l.endDate) {
		return Update{}, errs.NewBusinessRuleViolationError(RuleLoanNotOverdue,
			"loan end date has not passed")
	}

	return Update{Status: StatusOverdue}, nil
}

// Apply merges a transition result into a new Loan instance. The original is
// left untouched.
func (l *Loan) Apply(update Update) (*Loan, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	updated := *l

	if update.Status != StatusUnknown {
		if err := updated.setStatus(update.Status); err != nil {
			return nil, err
		}
	}
	if update.DestinationStationID != nil {
		if err := updated.setDestinationStationID(update.DestinationStationID); err != nil {
			return nil, err
		}
	}
	if update.EndDate != nil {
		if err := updated.setEndDate(update.EndDate); err != nil {
			return nil, err
		}
	}
	if update.TotalCost != nil {
		if err := updated.setTotalCost(*update.TotalCost); err != nil {
			return nil, err
		}
	}

	return &updated, nil
}

// CurrentCost returns what the rental costs as of now: a live recomputation
// from elapsed time for a running loan, the frozen total for a terminal one.
// An OVERDUE rental keeps accruing cost until it is completed or cancelled.
func (l *Loan) CurrentCost(hourlyRate kernel.Money, now time.Time) (kernel.Money, error) {
	if err := l.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if !l.IsRunning() {
		return l.totalCost, nil
	}

	return billCost(hourlyRate, kernel.DurationBetween(l.startDate, now))
}

// billCost charges every started hour in full: cost = rate * ceil(minutes/60).
func billCost(hourlyRate kernel.Money, duration kernel.Duration) (kernel.Money, error) {
	if err := errors.Join(hourlyRate.Validate(), duration.Validate()); err != nil {
		return kernel.Money{}, err
	}

	billedHours := (duration.Minutes() + minutesPerBilledHour - 1) / minutesPerBilledHour
	return hourlyRate.Multiply(decimal.NewFromInt(billedHours))
}

func (l *Loan) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Loan) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	l.userID = userID
	return nil
}

func (l *Loan) setTransportID(transportID kernel.ID) error {
	if err := transportID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("transportId", err)
	}
	l.transportID = transportID
	return nil
}

func (l *Loan) setOriginStationID(originStationID kernel.ID) error {
	if err := originStationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("originStationId", err)
	}
	l.originStationID = originStationID
	return nil
}

func (l *Loan) setDestinationStationID(destinationStationID *kernel.ID) error {
	if destinationStationID == nil {
		l.destinationStationID = nil
		return nil
	}
	if err := destinationStationID.Validate(); err != nil {
		return err
	}

	id := *destinationStationID
	l.destinationStationID = &id
	return nil
}

func (l *Loan) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate")
	}
	l.startDate = startDate
	return nil
}

func (l *Loan) setEndDate(endDate *time.Time) error {
	if endDate == nil {
		l.endDate = nil
		return nil
	}
	if !endDate.After(l.startDate) {
		return errs.NewValueIsInvalidErrorWithCause("endDate",
			errors.New("end date must be after start date"))
	}

	date := *endDate
	l.endDate = &date
	return nil
}

func (l *Loan) setTotalCost(totalCost kernel.Money) error {
	if err := totalCost.Validate(); err != nil {
		return err
	}
	l.totalCost = totalCost
	return nil
}

func (l *Loan) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

func (l *Loan) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	l.paymentMethod = paymentMethod
	return nil
}
