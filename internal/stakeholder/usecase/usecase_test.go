package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/auth"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"github.com/fekuna/agritrace-service/internal/memstore"
	"github.com/fekuna/agritrace-service/internal/stakeholder"
	"github.com/fekuna/agritrace-service/internal/stakeholder/dto"
	"github.com/fekuna/agritrace-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase() (stakeholder.UseCase, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewStakeholderUseCase(memstore.New().Stakeholders(), auth.Argon2{}, tokens, logger.NewNopLogger()), tokens
}

func register(t *testing.T, uc stakeholder.UseCase, name string, role lifecycle.Role) string {
	t.Helper()
	s, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:       name,
		Phone:      "+91 98000 00000",
		Location:   "Pune",
		Role:       role,
		Credential: "secret-" + name,
	})
	require.NoError(t, err)
	return s.ID
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	s, err := uc.Register(ctx, &dto.RegisterInput{Name: "  Asha  ", Role: lifecycle.RoleFarmer, Credential: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", s.Name)
	assert.False(t, s.IsVerified)
	assert.Contains(t, s.CredentialHash, "$argon2id$")

	_, err = uc.Register(ctx, &dto.RegisterInput{Name: "", Role: lifecycle.RoleFarmer, Credential: "hunter22"})
	assert.ErrorIs(t, err, apperr.InvalidArgument)
	_, err = uc.Register(ctx, &dto.RegisterInput{Name: "B", Role: "wholesaler", Credential: "hunter22"})
	assert.ErrorIs(t, err, apperr.InvalidArgument)
	_, err = uc.Register(ctx, &dto.RegisterInput{Name: "B", Role: lifecycle.RoleRetailer, Credential: "123"})
	assert.ErrorIs(t, err, apperr.InvalidArgument)
}

func TestVerifyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	id := register(t, uc, "dist", lifecycle.RoleDistributor)

	first, err := uc.Verify(ctx, id)
	require.NoError(t, err)
	assert.True(t, first.IsVerified)
	require.NotNil(t, first.VerifiedAt)

	second, err := uc.Verify(ctx, id)
	require.NoError(t, err)
	assert.True(t, second.IsVerified)
	assert.Equal(t, *first.VerifiedAt, *second.VerifiedAt)

	_, err = uc.Verify(ctx, "missing")
	assert.ErrorIs(t, err, apperr.NotFound)
}

func TestTransferTargetsAreNextRoleOnly(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	farmer := register(t, uc, "farmer", lifecycle.RoleFarmer)
	d1 := register(t, uc, "d1", lifecycle.RoleDistributor)
	register(t, uc, "d2", lifecycle.RoleDistributor) // unverified
	r1 := register(t, uc, "r1", lifecycle.RoleRetailer)
	consumer := register(t, uc, "c1", lifecycle.RoleConsumer)

	for _, id := range []string{d1, r1} {
		_, err := uc.Verify(ctx, id)
		require.NoError(t, err)
	}

	targets, err := uc.TransferTargets(ctx, farmer)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, d1, targets[0].ID)

	targets, err = uc.TransferTargets(ctx, consumer)
	require.NoError(t, err)
	assert.Empty(t, targets)

	_, err = uc.TransferTargets(ctx, "missing")
	assert.ErrorIs(t, err, apperr.NotFound)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, tokens := newUseCase()
	id := register(t, uc, "ret", lifecycle.RoleRetailer)

	session, err := uc.Login(ctx, &dto.LoginInput{StakeholderID: id, Credential: "secret-ret"})
	require.NoError(t, err)
	claims, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.Subject)
	assert.Equal(t, lifecycle.RoleRetailer, claims.Role)

	_, err = uc.Login(ctx, &dto.LoginInput{StakeholderID: id, Credential: "wrong"})
	assert.ErrorIs(t, err, apperr.Unauthorized)
	_, err = uc.Login(ctx, &dto.LoginInput{StakeholderID: "missing", Credential: "secret-ret"})
	assert.ErrorIs(t, err, apperr.Unauthorized)
}

func TestListStakeholdersRejectsUnknownRole(t *testing.T) {
	uc, _ := newUseCase()
	_, _, err := uc.ListStakeholders(context.Background(), &dto.StakeholderFilters{Role: "admin"})
	assert.ErrorIs(t, err, apperr.InvalidArgument)
}
