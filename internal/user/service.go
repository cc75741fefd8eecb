package user

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bruno-soares-web/techmanage/internal/platform/logging"
	"github.com/bruno-soares-web/techmanage/internal/platform/timeutil"
)

// Service orchestrates validation, uniqueness enforcement, and persistence
// for user records.
type Service struct {
	store Store
}

// NewService creates a Service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates the input, enforces email/phone uniqueness, and persists a
// new record. The store assigns the id; any caller-supplied id is ignored.
func (s *Service) Create(ctx context.Context, in Input) (*User, error) {
	if violations := Validate(in); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	if err := s.checkUnique(ctx, in.Email, in.Phone, 0); err != nil {
		return nil, err
	}

	rec := &User{}
	applyInput(rec, in)
	saved, err := s.store.Save(ctx, rec)
	if err != nil {
		return nil, err
	}
	logging.LogInfo(ctx, "user created", zap.Int64("id", saved.ID))
	return saved, nil
}

// Get returns the record with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	u, err := s.store.FindByID(ctx, id)
	if errors.Is(err, ErrMissing) {
		return nil, &NotFoundError{ID: id}
	}
	return u, err
}

// List returns all records in the store's natural (insertion) order.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.store.FindAll(ctx)
}

// Update replaces every mutable field of an existing record. The id is never
// overwritten, and the record's own email/phone are excluded from the
// uniqueness scan so an unchanged value does not conflict with itself.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*User, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if violations := Validate(in); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	if err := s.checkUnique(ctx, in.Email, in.Phone, id); err != nil {
		return nil, err
	}

	applyInput(existing, in)
	saved, err := s.store.Save(ctx, existing)
	if err != nil {
		return nil, err
	}
	logging.LogInfo(ctx, "user updated", zap.Int64("id", saved.ID))
	return saved, nil
}

// Delete removes the record with the given id. The delete is hard; no
// tombstone remains.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrMissing) {
			return &NotFoundError{ID: id}
		}
		return err
	}
	logging.LogInfo(ctx, "user deleted", zap.Int64("id", id))
	return nil
}

// checkUnique scans the stored records for an email or phone collision,
// skipping the record identified by excludeID (zero for create). Email is
// checked across all records before phone, so a candidate colliding on both
// reports only the email conflict. Comparison is byte-for-byte on the raw
// stored values.
func (s *Service) checkUnique(ctx context.Context, email, phone string, excludeID int64) error {
	all, err := s.store.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, u := range all {
		if u.ID != excludeID && u.Email == email {
			return &ConflictError{Field: "email"}
		}
	}
	for _, u := range all {
		if u.ID != excludeID && u.Phone == phone {
			return &ConflictError{Field: "phone"}
		}
	}
	return nil
}

// applyInput copies every mutable field onto the record. Inputs are assumed
// already validated, so the date and type tokens decode cleanly.
func applyInput(u *User, in Input) {
	birth, _ := timeutil.ParseDate(in.BirthDate)
	userType, _ := ParseUserType(in.UserType)

	u.FullName = in.FullName
	u.Email = in.Email
	u.Phone = in.Phone
	u.BirthDate = birth
	u.UserType = userType
	u.Address = in.Address
}
