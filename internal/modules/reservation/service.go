package reservation

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"hotel/internal/domain"
	"hotel/internal/pkg/validator"
)

// HotelName is stamped on every reservation the manager creates.
const HotelName = "Transilvania"

type addRequest struct {
	Clients []domain.Client `validate:"required,min=1"`
	Days    int             `validate:"gt=0"`
}

// Manager keeps the active reservations of the hotel in insertion order and
// mints their ids. It is not safe for concurrent use.
type Manager struct {
	reservations []domain.Reservation
	counter      int
	log          *zap.Logger
}

func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{log: log}
}

// AddReservation books clients for the given number of days. On failure it
// returns nil and an error wrapping ErrInvalidReservation,
// ErrUserAlreadyReserved or ErrRepeatedID; the collection is left untouched.
func (m *Manager) AddReservation(clients []domain.Client, days int, breakfast bool) (*domain.Reservation, error) {
	r, err := m.addReservation(clients, days, breakfast)
	if err != nil {
		m.log.Warn("add reservation rejected",
			zap.Int("clients", len(clients)),
			zap.Int("days", days),
			zap.Error(err),
		)
		return nil, err
	}

	m.log.Info("reservation created", zap.Object("reservation", r))
	out := r.Clone()
	return &out, nil
}

func (m *Manager) addReservation(clients []domain.Client, days int, breakfast bool) (domain.Reservation, error) {
	if errs := validator.Validate(addRequest{Clients: clients, Days: days}); errs != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %s", ErrInvalidReservation, describeFields(errs))
	}

	if err := m.CheckClients(clients); err != nil {
		return domain.Reservation{}, err
	}

	id, err := m.newID()
	if err != nil {
		return domain.Reservation{}, err
	}

	r := domain.Reservation{
		ID:        id,
		HotelName: HotelName,
		Clients:   append([]domain.Client(nil), clients...),
		Days:      days,
		Price:     CalculatePrice(len(clients), days, breakfast),
		Breakfast: breakfast,
	}
	m.reservations = append(m.reservations, r)
	return r, nil
}

// CancelReservation removes the active reservation with the given id.
// Unknown ids yield ErrNoReservation.
func (m *Manager) CancelReservation(id int) error {
	idx := m.indexOf(id)
	if idx < 0 {
		err := fmt.Errorf("%w: id %d", ErrNoReservation, id)
		m.log.Warn("cancel reservation rejected", zap.Int("reservation_id", id), zap.Error(err))
		return err
	}

	m.reservations = append(m.reservations[:idx], m.reservations[idx+1:]...)
	m.log.Info("reservation cancelled", zap.Int("reservation_id", id))
	return nil
}

// GetAllReservations returns a copy of the active reservations in the order
// they were made.
func (m *Manager) GetAllReservations() []domain.Reservation {
	out := make([]domain.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		out = append(out, r.Clone())
	}
	return out
}

// CheckClients fails with ErrUserAlreadyReserved when clients repeats a guest
// or names a guest who already holds an active reservation.
func (m *Manager) CheckClients(clients []domain.Client) error {
	seen := make(map[domain.Client]struct{}, len(clients))
	for _, c := range clients {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %q listed twice", ErrUserAlreadyReserved, c.Name)
		}
		seen[c] = struct{}{}
	}

	for _, c := range clients {
		for _, r := range m.reservations {
			if r.HasClient(c) {
				return fmt.Errorf("%w: %q is in reservation %d", ErrUserAlreadyReserved, c.Name, r.ID)
			}
		}
	}
	return nil
}

// CheckReservation fails with ErrNoReservation when no active reservation has id.
func (m *Manager) CheckReservation(id int) error {
	if m.indexOf(id) < 0 {
		return fmt.Errorf("%w: id %d", ErrNoReservation, id)
	}
	return nil
}

// newID advances the counter. A rejected value is not handed out again.
func (m *Manager) newID() (int, error) {
	m.counter++
	if m.indexOf(m.counter) >= 0 {
		return 0, fmt.Errorf("%w: id %d", ErrRepeatedID, m.counter)
	}
	return m.counter, nil
}

func (m *Manager) indexOf(id int) int {
	for i, r := range m.reservations {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func describeFields(errs map[string]string) string {
	parts := make([]string, 0, len(errs))
	for field, tag := range errs {
		parts = append(parts, field+" failed "+tag)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
