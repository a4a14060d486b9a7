package auth

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tallerok/taller-api/internal/application/audit"
	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
	"github.com/tallerok/taller-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación y gestión de empleados.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	audit    *audit.Recorder
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, auditRec *audit.Recorder) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, audit: auditRec}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret,
		strconv.FormatInt(user.ID, 10), user.FullName, user.Role,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.audit.Record(user.FullName, "login", "inicio de sesión", audit.StatusInfo)
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// CreateUser da de alta un empleado (solo admin en el router): hashea la
// contraseña con bcrypt y persiste.
func (uc *UseCase) CreateUser(in dto.CreateUserRequest, session domain.Session) (*dto.UserResponse, error) {
	if !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Username == "" || in.Password == "" || in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role == "" {
		in.Role = domain.RoleMecanico
	}
	if in.Role != domain.RoleAdmin && in.Role != domain.RoleMecanico {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.audit.Record(session.Name, "crear_usuario", "alta de "+in.Username+" ("+in.Role+")", audit.StatusInfo)
	resp := toUserResponse(user)
	return &resp, nil
}

// ListUsers lista los empleados.
func (uc *UseCase) ListUsers() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// DeleteUser elimina un empleado.
func (uc *UseCase) DeleteUser(id int64, session domain.Session) error {
	if !session.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := uc.userRepo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(session.Name, "borrar_usuario", "baja de usuario #"+strconv.FormatInt(id, 10), audit.StatusWarning)
	return nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
