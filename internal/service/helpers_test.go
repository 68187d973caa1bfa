package service

import (
	"fmt"
	"time"

	"conference-admin/internal/api"
	"conference-admin/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	createConference = store.CreateConference
	updateConference = store.UpdateConference
	deleteConference = store.DeleteConference
	createUser = store.CreateUser
	createRoleAssignment = store.CreateRoleAssignment
	updateUser = store.UpdateUser
	getUserIDByUsername = store.GetUserIDByUsername
	deleteRoleAssignmentsByUser = store.DeleteRoleAssignmentsByUser
	deleteUser = store.DeleteUser
	listUsers = store.ListUsers
}

var (
	testValidate = api.NewValidator()
	testLogger   = zap.NewNop()
)

func ptr[T any](v T) *T { return &v }

// fakeRow 實作 pgx.Row，回傳固定的 int 值
type fakeRow struct {
	ids []int
	err error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.ids) {
		return fmt.Errorf("scan: want %d dest, got %d", len(r.ids), len(dest))
	}
	for i, d := range dest {
		*d.(*int) = r.ids[i]
	}
	return nil
}

func validConference() api.CreateConferenceRequest {
	return api.CreateConferenceRequest{
		Title:     ptr("Conferinta"),
		Location:  ptr("Bucuresti"),
		Country:   ptr("Romania"),
		StartDate: ptr(1584437524.0),
		EndDate:   ptr(1584437525.0),
	}
}

func validConferenceUpdate() api.UpdateConferenceRequest {
	return api.UpdateConferenceRequest{
		Title:             ptr("Conferinta"),
		Location:          ptr("Bucuresti"),
		Country:           ptr("Romania"),
		StartDate:         ptr(1584437524.0),
		EndDate:           ptr(1584437525.0),
		PathToLogo:        ptr("logo.png"),
		PathToDescription: ptr("descriere.pdf"),
	}
}

func flag(b bool) *api.Flag {
	f := api.Flag(b)
	return &f
}

func validUser(username string) api.CreateUserRequest {
	return api.CreateUserRequest{
		Username:         ptr(username),
		Password:         ptr("cHcxMjM="),
		FirstName:        ptr("Alice"),
		LastName:         ptr("Liddell"),
		ValidAccount:     flag(false),
		IsPhD:            flag(true),
		EducationalTitle: ptr("Dr"),
	}
}

func validUserUpdate(username string) api.UpdateUserRequest {
	return api.UpdateUserRequest{
		Username:         ptr(username),
		FirstName:        ptr("Alice"),
		LastName:         ptr("Liddell"),
		ValidAccount:     flag(true),
		IsPhD:            flag(false),
		EducationalTitle: ptr("Prof"),
	}
}

