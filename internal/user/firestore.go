package user

import (
	"context"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bruno-soares-web/techmanage/internal/platform/timeutil"
)

const (
	usersCollection    = "users"
	countersCollection = "counters"
	usersCounterDoc    = "users"
)

// firestoreUser maps to the Firestore document structure. The numeric id is
// duplicated into a field so listings can be ordered by insertion without
// relying on lexicographic document ids.
type firestoreUser struct {
	ID        int64     `firestore:"id"`
	FullName  string    `firestore:"full_name"`
	Email     string    `firestore:"email"`
	Phone     string    `firestore:"phone"`
	BirthDate time.Time `firestore:"birth_date"`
	UserType  string    `firestore:"user_type"`
	Address   string    `firestore:"address,omitempty"`
}

func (fu firestoreUser) toUser() User {
	return User{
		ID:        fu.ID,
		FullName:  fu.FullName,
		Email:     fu.Email,
		Phone:     fu.Phone,
		BirthDate: timeutil.NewDate(fu.BirthDate),
		UserType:  UserType(fu.UserType),
		Address:   fu.Address,
	}
}

func toFirestoreUser(u User) firestoreUser {
	return firestoreUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		BirthDate: u.BirthDate.UTC(),
		UserType:  string(u.UserType),
		Address:   u.Address,
	}
}

// FirestoreStore implements Store using Firestore. Documents are keyed by the
// decimal id; ids are allocated from a transactional counter document so they
// are dense and monotonically increasing.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) docRef(id int64) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(strconv.FormatInt(id, 10))
}

func (s *FirestoreStore) FindAll(ctx context.Context) ([]User, error) {
	iter := s.client.Collection(usersCollection).
		OrderBy("id", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var out []User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var fu firestoreUser
		if err := doc.DataTo(&fu); err != nil {
			return nil, err
		}
		out = append(out, fu.toUser())
	}
	return out, nil
}

func (s *FirestoreStore) FindByID(ctx context.Context, id int64) (*User, error) {
	doc, err := s.docRef(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrMissing
		}
		return nil, err
	}

	var fu firestoreUser
	if err := doc.DataTo(&fu); err != nil {
		return nil, err
	}
	u := fu.toUser()
	return &u, nil
}

// Save inserts or updates a record. Inserts allocate the id and write the
// document inside one transaction so concurrent creates cannot share an id.
func (s *FirestoreStore) Save(ctx context.Context, u *User) (*User, error) {
	saved := *u
	if saved.ID != 0 {
		if _, err := s.docRef(saved.ID).Set(ctx, toFirestoreUser(saved)); err != nil {
			return nil, err
		}
		return &saved, nil
	}

	counterRef := s.client.Collection(countersCollection).Doc(usersCounterDoc)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var next int64 = 1
		doc, err := tx.Get(counterRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil && doc.Exists() {
			v, err := doc.DataAt("next")
			if err != nil {
				return err
			}
			if n, ok := v.(int64); ok {
				next = n
			}
		}

		saved.ID = next
		if err := tx.Set(counterRef, map[string]any{"next": next + 1}); err != nil {
			return err
		}
		return tx.Set(s.docRef(saved.ID), toFirestoreUser(saved))
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes a record using a transaction to ensure it exists.
func (s *FirestoreStore) Delete(ctx context.Context, id int64) error {
	docRef := s.docRef(id)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrMissing
			}
			return err
		}
		return tx.Delete(docRef)
	})
}

// Compile-time interface check
var _ Store = (*FirestoreStore)(nil)
