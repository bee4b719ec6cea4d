package service_test

import (
	"context"
	"testing"

	"github.com/rapidcourier/courier-backend/internal/domain"
	"github.com/rapidcourier/courier-backend/internal/repository/postgres"
	"github.com/rapidcourier/courier-backend/internal/service"
	"github.com/rapidcourier/courier-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterInput(email string) service.RegisterInput {
	return service.RegisterInput{
		Email:      email,
		Password:   "secret1",
		FullName:   "A",
		DoorNumber: "12",
		Street:     "Main",
		City:       "X",
		State:      "Y",
		Pincode:    "600001",
	}
}

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.RegisterInput
		setup     func()
		wantErr   error
		checkUser bool
	}{
		{
			name:      "successful registration",
			input:     validRegisterInput("new@example.com"),
			checkUser: true,
		},
		{
			name:  "duplicate email",
			input: validRegisterInput("existing@example.com"),
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@example.com").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean up between tests
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkUser {
				assert.NotNil(t, result.User)
				assert.Equal(t, tt.input.Email, result.User.Email)
				assert.NotEmpty(t, result.Token)
				assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)
			}
		})
	}
}

func TestAuthService_Register_DuplicateLeavesOneRow(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, testutil.TestConfig())
	ctx := context.Background()

	_, err := authService.Register(ctx, validRegisterInput("a@x.com"))
	require.NoError(t, err)

	_, err = authService.Register(ctx, validRegisterInput("a@x.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	var count int64
	require.NoError(t, testDB.DB.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_Register_ReportsAllMissingFields(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, testutil.TestConfig())

	input := validRegisterInput("missing@example.com")
	input.Email = ""
	input.City = ""
	input.Pincode = ""

	_, err := authService.Register(context.Background(), input)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"email", "city", "pincode"}, verr.Fields)
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	// Create a user for login tests
	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    user.Email,
				Password: "wrongpassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			// Must be indistinguishable from a wrong password.
			name: "non-existent email",
			input: service.LoginInput{
				Email:    "nobody@example.com",
				Password: "anypassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, result.User)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	result, err := authService.Register(ctx, validRegisterInput("token@example.com"))
	require.NoError(t, err)

	t.Run("valid token round-trips", func(t *testing.T) {
		claims, err := authService.ValidateToken(result.Token)
		require.NoError(t, err)

		assert.Equal(t, result.User.ID.String(), (*claims)["sub"])
		assert.Equal(t, result.User.Email, (*claims)["email"])
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := authService.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		otherCfg := testutil.TestConfig()
		otherCfg.JWTSecret = "a-completely-different-secret"
		otherService := service.NewAuthService(repos.User, otherCfg)

		forged, err := otherService.MintToken(result.User)
		require.NoError(t, err)

		_, err = authService.ValidateToken(forged)
		assert.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expiredCfg := testutil.TestConfig()
		expiredCfg.JWTExpirationHours = -1
		expiredService := service.NewAuthService(repos.User, expiredCfg)

		expired, err := expiredService.MintToken(result.User)
		require.NoError(t, err)

		_, err = authService.ValidateToken(expired)
		assert.Error(t, err)
	})
}
