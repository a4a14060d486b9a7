package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/pkg/jwt"
)

type fakeUserRepo struct {
	seq    int64
	byName map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.byName[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	f.seq++
	u.ID = f.seq
	cp := *u
	f.byName[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byName {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	for name, u := range f.byName {
		if u.ID == id {
			delete(f.byName, name)
			return nil
		}
	}
	return domain.ErrNotFound
}

var (
	adminSession    = domain.Session{UserID: "1", Name: "Ana Admin", Role: domain.RoleAdmin}
	mecanicoSession = domain.Session{UserID: "2", Name: "Marcos", Role: domain.RoleMecanico}
)

var testJWTCfg = JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "taller-api-test"}

// seedAdmin crea un admin directo en el repo pasando por CreateUser de otro admin.
func seedUser(t *testing.T, uc *UseCase, username, password, role string) dto.UserResponse {
	t.Helper()
	u, err := uc.CreateUser(dto.CreateUserRequest{
		Username: username, Password: password, FullName: "Usuario " + username, Role: role,
	}, adminSession)
	require.NoError(t, err)
	return *u
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testJWTCfg, nil)
	seedUser(t, uc, "ana", "secreta123", domain.RoleAdmin)

	resp, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, name, role, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)
	assert.Equal(t, "Usuario ana", name)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, testJWTCfg, nil)
	seedUser(t, uc, "ana", "secreta123", domain.RoleAdmin)

	_, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg, nil)
	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateUser_SoloAdmin(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg, nil)
	_, err := uc.CreateUser(dto.CreateUserRequest{
		Username: "nuevo", Password: "pass", FullName: "Nuevo",
	}, mecanicoSession)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateUser_RolPorDefectoEsMecanico(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg, nil)
	u, err := uc.CreateUser(dto.CreateUserRequest{
		Username: "marcos", Password: "pass", FullName: "Marcos",
	}, adminSession)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMecanico, u.Role)
}

func TestCreateUser_UsernameRepetido(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg, nil)
	seedUser(t, uc, "ana", "pass", domain.RoleAdmin)

	_, err := uc.CreateUser(dto.CreateUserRequest{
		Username: "ana", Password: "otra", FullName: "Otra Ana",
	}, adminSession)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCreateUser_RolDesconocido(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg, nil)
	_, err := uc.CreateUser(dto.CreateUserRequest{
		Username: "x", Password: "pass", FullName: "X", Role: "gerente",
	}, adminSession)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteUser_SoloAdmin(t *testing.T) {
	uc := NewUseCase(newFakeUserRepo(), testJWTCfg, nil)
	err := uc.DeleteUser(1, mecanicoSession)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
