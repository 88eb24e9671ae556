package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"restogestion/internal/apierror"
	"restogestion/internal/config"
	"restogestion/internal/dto"
	"restogestion/internal/model"
	"restogestion/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrCredencialesIncorrectas is returned by Login when the password does not
// match. No token is issued.
var ErrCredencialesIncorrectas = apierror.Unauthorized("Email o contraseña incorrectos")

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Registrar creates a user. callerID is nil for anonymous requests, which
	// are only accepted while the users table is empty.
	Registrar(ctx context.Context, callerID *uint, req dto.RegistroRequest) error
	CambiarPassword(ctx context.Context, userID uint, req dto.CambiarPasswordRequest) error
	Perfil(ctx context.Context, userID uint) (*dto.PerfilUsuario, error)
}

type authService struct {
	usuarios     repository.UsuarioRepository
	restaurantes repository.CrudRepository[model.Restaurante]
	cfg          *config.Config
}

func NewAuthService(usuarios repository.UsuarioRepository, restaurantes repository.CrudRepository[model.Restaurante], cfg *config.Config) AuthService {
	return &authService{usuarios: usuarios, restaurantes: restaurantes, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarios.FindByEmail(ctx, req.Email)
	if err != nil {
		if IsNoEncontrado(err) {
			return nil, apierror.NotFound("Email no encontrado")
		}
		return nil, apierror.Internal("Error al iniciar sesion", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesIncorrectas
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, apierror.Internal("Error al iniciar sesion", err)
	}

	perfil, err := s.perfil(ctx, user)
	if err != nil {
		return nil, apierror.Internal("Error al iniciar sesion", err)
	}
	return &dto.LoginResponse{AccessToken: token, User: *perfil}, nil
}

func (s *authService) Registrar(ctx context.Context, callerID *uint, req dto.RegistroRequest) error {
	return runTx(ctx, s.usuarios.DB(), func(tx *gorm.DB) error {
		total, err := s.usuarios.Count(ctx, tx)
		if err != nil {
			return apierror.Internal("Error al registrar", err)
		}

		// Bootstrap: only an empty users table accepts anonymous registration.
		if total > 0 {
			if callerID == nil {
				return apierror.Forbidden("No autorizado")
			}
			caller, err := s.usuarios.FindByID(ctx, *callerID)
			if err != nil && !IsNoEncontrado(err) {
				return apierror.Internal("Error al registrar", err)
			}
			if caller == nil || caller.Rol != model.RolAdmin {
				return apierror.Forbidden("Solo el admin puede crear usuarios")
			}
		}

		if model.RequiereRestaurante(req.Rol) && (req.RestauranteID == nil || *req.RestauranteID == 0) {
			return apierror.Validation("Chef o encargado debe tener restaurante asignado")
		}

		existing, err := s.usuarios.FindByEmail(ctx, req.Email)
		if err != nil && !IsNoEncontrado(err) {
			return apierror.Internal("Error al registrar", err)
		}
		if existing != nil {
			return apierror.Conflict("Email ya registrado")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
		if err != nil {
			return apierror.Internal("Error al registrar", err)
		}
		user := &model.Usuario{
			Nombre:        req.Nombre,
			Email:         req.Email,
			PasswordHash:  string(hash),
			Rol:           req.Rol,
			RestauranteID: req.RestauranteID,
		}
		if err := s.usuarios.Create(ctx, tx, user); err != nil {
			if repository.IsUniqueViolation(err) {
				return apierror.Conflict("Email ya registrado")
			}
			return apierror.Internal("Error al registrar", err)
		}

		log.Info().Uint("usuario_id", user.ID).Str("rol", user.Rol).Bool("bootstrap", total == 0).Msg("usuario registrado")
		return nil
	})
}

func (s *authService) CambiarPassword(ctx context.Context, userID uint, req dto.CambiarPasswordRequest) error {
	user, err := s.usuarios.FindByID(ctx, userID)
	if err != nil {
		if IsNoEncontrado(err) {
			return apierror.NotFound("Usuario no encontrado")
		}
		return apierror.Internal("Error al actualizar la contraseña", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Actual)); err != nil {
		return apierror.Unauthorized("Contraseña actual incorrecta")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Nueva), s.cfg.BcryptCost)
	if err != nil {
		return apierror.Internal("Error al actualizar la contraseña", err)
	}
	user.PasswordHash = string(hash)

	err = runTx(ctx, s.usuarios.DB(), func(tx *gorm.DB) error {
		return s.usuarios.Update(ctx, tx, user)
	})
	if err != nil {
		return apierror.Internal("Error al actualizar la contraseña", err)
	}
	return nil
}

func (s *authService) Perfil(ctx context.Context, userID uint) (*dto.PerfilUsuario, error) {
	user, err := s.usuarios.FindByID(ctx, userID)
	if err != nil {
		if IsNoEncontrado(err) {
			return nil, apierror.NotFound("Usuario no encontrado")
		}
		log.Error().Err(err).Uint("usuario_id", userID).Msg("perfil: lectura de usuario")
		return nil, apierror.Internal("Algo salió mal", nil)
	}
	perfil, err := s.perfil(ctx, user)
	if err != nil {
		log.Error().Err(err).Uint("usuario_id", userID).Msg("perfil: lectura de restaurante")
		return nil, apierror.Internal("Algo salió mal", nil)
	}
	return perfil, nil
}

// perfil builds the user representation, adding the restaurant name when the
// reference resolves. A dangling reference is not an error.
func (s *authService) perfil(ctx context.Context, user *model.Usuario) (*dto.PerfilUsuario, error) {
	p := dto.NewPerfilUsuario(*user)
	if user.RestauranteID == nil {
		return &p, nil
	}
	r, err := s.restaurantes.FindByID(ctx, *user.RestauranteID)
	if err != nil {
		if IsNoEncontrado(err) {
			return &p, nil
		}
		return nil, err
	}
	p.RestauranteNombre = &r.Nombre
	return &p, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// HashPasswordParche re-hashes a "password" key supplied to PUT /usuarios/{id}.
// An empty or null password leaves the stored hash untouched.
func HashPasswordParche(cost int) Parche[model.Usuario] {
	return func(u *model.Usuario, campos map[string]json.RawMessage) error {
		raw, ok := campos["password"]
		if !ok {
			return nil
		}
		var password *string
		if err := json.Unmarshal(raw, &password); err != nil {
			return apierror.Validation("Datos invalidos: password debe ser texto")
		}
		if password == nil || *password == "" {
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), cost)
		if err != nil {
			return fmt.Errorf("hash de password: %w", err)
		}
		u.PasswordHash = string(hash)
		return nil
	}
}
