package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bruno-soares-web/techmanage/internal/platform/apierror"
	usersvc "github.com/bruno-soares-web/techmanage/internal/user"
)

// Register registers user record endpoints.
func Register(api huma.API, svc *usersvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/api/users",
		Summary:       "Create user",
		Description:   "Creates a new user record. Email and phone must be unique.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
		// The domain validator owns body rules; JSON null for a field must
		// reach it as a zero value rather than fail the generated schema.
		SkipValidateBody: true,
	}, func(ctx context.Context, input *UserCreateInput) (*UserCreateOutput, error) {
		u, err := svc.Create(ctx, toInput(input.Body))
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &UserCreateOutput{
			Location: fmt.Sprintf("/api/users/%d", u.ID),
			Body:     toHTTPUser(u),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/api/users",
		Summary:     "List users",
		Description: "Returns all user records in insertion order.",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, _ *UserListInput) (*UserListOutput, error) {
		records, err := svc.List(ctx)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		out := make([]User, 0, len(records))
		for i := range records {
			out = append(out, toHTTPUser(&records[i]))
		}
		return &UserListOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/users/{id}",
		Summary:     "Get user by id",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *UserGetInput) (*UserGetOutput, error) {
		u, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &UserGetOutput{Body: toHTTPUser(u)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:      "update-user",
		Method:           http.MethodPut,
		Path:             "/api/users/{id}",
		Summary:          "Update user",
		Description:      "Replaces every mutable field of an existing record. The id is immutable.",
		Tags:             []string{"Users"},
		SkipValidateBody: true,
	}, func(ctx context.Context, input *UserUpdateInput) (*UserUpdateOutput, error) {
		u, err := svc.Update(ctx, input.ID, toInput(input.Body))
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &UserUpdateOutput{Body: toHTTPUser(u)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-user",
		Method:        http.MethodDelete,
		Path:          "/api/users/{id}",
		Summary:       "Delete user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *UserDeleteInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return nil, nil
	})
}

func mapServiceError(ctx context.Context, err error) error {
	var (
		ve *usersvc.ValidationError
		ce *usersvc.ConflictError
		nf *usersvc.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		fieldErrors := make(apierror.FieldErrors, 0, len(ve.Violations))
		for _, v := range ve.Violations {
			fieldErrors = append(fieldErrors, apierror.FieldError{Field: v.Field, Message: v.Message})
		}
		return apierror.Validation(ctx, fieldErrors)
	case errors.As(err, &ce):
		return apierror.Conflict(ctx, ce.Field, ce.Message())
	case errors.As(err, &nf):
		return apierror.NotFound(ctx, nf.ID)
	default:
		return apierror.Internal(ctx, err)
	}
}
