package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operix/plataforma-api/internal/application/auth"
	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	pkgjwt "github.com/operix/plataforma-api/pkg/jwt"
)

const (
	testCompanyID = "empresa-1"
	testSecret    = "test-secret-key-for-unit-tests"
)

type fakeUserRepo struct {
	users map[string]*entity.User // clave: email
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	u := r.users[email]
	if u == nil || u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func newFixture() (*auth.AuthUseCase, *fakeUserRepo) {
	userRepo := &fakeUserRepo{users: make(map[string]*entity.User)}
	companyRepo := &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
	companyRepo.Create(&entity.Company{ID: testCompanyID, Name: "Operix Demo SAS", TaxID: "900900900-1"})

	return auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "operix-test",
	}), userRepo
}

func register(t *testing.T, uc *auth.AuthUseCase, email, password, role string) *dto.UserResponse {
	t.Helper()
	out, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Email:     email,
		Password:  password,
		Name:      "Usuario Test",
		Role:      role,
	})
	require.NoError(t, err)
	return out
}

func TestRegisterUser_HasheaPassword(t *testing.T) {
	uc, userRepo := newFixture()

	out := register(t, uc, "ana@operix.co", "secreta123", entity.RoleAdmin)

	assert.Equal(t, entity.RoleAdmin, out.Role)
	stored := userRepo.users["ana@operix.co"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash,
		"el password nunca se persiste en claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newFixture()
	register(t, uc, "ana@operix.co", "secreta123", entity.RoleAdmin)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: testCompanyID,
		Email:     "ana@operix.co",
		Password:  "otra",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_EmpresaInexistente(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		CompanyID: "empresa-fantasma",
		Email:     "ana@operix.co",
		Password:  "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUser_RolPorDefectoVentas(t *testing.T) {
	uc, _ := newFixture()

	out := register(t, uc, "sincargo@operix.co", "secreta123", "")
	assert.Equal(t, entity.RoleVentas, out.Role)
}

func TestLogin_TokenConClaims(t *testing.T) {
	uc, _ := newFixture()
	register(t, uc, "ana@operix.co", "secreta123", entity.RoleGerente)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@operix.co", Password: "secreta123"})

	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	userID, companyID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, testCompanyID, companyID)
	assert.Equal(t, entity.RoleGerente, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newFixture()
	register(t, uc, "ana@operix.co", "secreta123", entity.RoleGerente)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@operix.co", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@operix.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, userRepo := newFixture()
	register(t, uc, "ana@operix.co", "secreta123", entity.RoleGerente)
	userRepo.users["ana@operix.co"].Status = "suspended"

	_, err := uc.Login(dto.LoginRequest{Email: "ana@operix.co", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
