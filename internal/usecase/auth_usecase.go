package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/apperror"
	"hospital-management-api/pkg/events"
	"hospital-management-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	internalErrorMessage = "Internal server error"
	doctorDashboardPath  = "/doctor/dashboard"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, identity entity.Identity) (*dto.ProfileResponse, error)
	DoctorLogin(ctx context.Context, req *dto.DoctorLoginRequest) (*dto.DoctorLoginResponse, error)
	// Authenticate verifies an access token and re-checks the account it names.
	Authenticate(ctx context.Context, rawToken string) (*entity.Identity, error)
}

type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) (bool, error)
}

type authUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	registration *RegistrationValidator
	hasher       PasswordHasher
	jwtService   *jwt.JWTService
	auditService service.AuditService
	publisher    events.Publisher
	profileCache repository.ProfileCache
	kinds        map[entity.Role]*accountKind
}

// NewAuthUsecase wires the authentication flows. profileCache may be nil.
func NewAuthUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	registration *RegistrationValidator,
	hasher PasswordHasher,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
	publisher events.Publisher,
	profileCache repository.ProfileCache,
) AuthUsecase {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &authUsecase{
		log:          log,
		patientRepo:  patientRepo,
		registration: registration,
		hasher:       hasher,
		jwtService:   jwtService,
		auditService: auditService,
		publisher:    publisher,
		profileCache: profileCache,
		kinds: map[entity.Role]*accountKind{
			entity.RolePatient: patientKind(patientRepo),
			entity.RoleDoctor:  doctorKind(doctorRepo),
		},
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
	validated, err := u.registration.Validate(ctx, req)
	if err != nil {
		return nil, err
	}

	digest, err := u.hasher.Hash(ctx, validated.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}

	patient := &entity.Patient{
		ID:          uuid.New(),
		FullName:    validated.FullName,
		Email:       validated.Email,
		Password:    digest,
		Role:        entity.RolePatient,
		Gender:      validated.Gender,
		DateOfBirth: validated.DateOfBirth,
		IsActive:    true,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperror.ErrDuplicateAccount
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}

	resp, err := u.issuePair(patient)
	if err != nil {
		return nil, err
	}

	u.audit(ctx, patient, entity.AuditActionAccountRegister)
	u.publish(ctx, events.PatientRegistered, events.PatientRegisteredEvent{
		AccountID:    patient.ID,
		Email:        patient.Email,
		FullName:     patient.FullName,
		RegisteredAt: time.Now().UTC(),
	})

	return resp, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	kind := u.kinds[entity.RolePatient]
	account, err := u.login(ctx, kind, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	patient, err := u.patientRepo.Update(ctx, account.AccountID(), entity.PatientPatch{LastLogin: &now})
	if err != nil {
		u.log.Warnf("Failed to update last login: %+v", err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}
	u.invalidateProfile(ctx, kind.role, account.AccountID())
	if patient == nil {
		patient = account.(*entity.Patient)
		patient.LastLogin = &now
	}

	resp, err := u.issuePair(patient)
	if err != nil {
		return nil, err
	}

	u.loggedIn(ctx, kind, account)
	return resp, nil
}

func (u *authUsecase) DoctorLogin(ctx context.Context, req *dto.DoctorLoginRequest) (*dto.DoctorLoginResponse, error) {
	kind := u.kinds[entity.RoleDoctor]
	account, err := u.login(ctx, kind, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, _, err := u.jwtService.Issue(identityOf(account), jwt.AccessToken)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}

	u.loggedIn(ctx, kind, account)

	return &dto.DoctorLoginResponse{
		Token:      token,
		RedirectTo: doctorDashboardPath,
	}, nil
}

func (u *authUsecase) GetProfile(ctx context.Context, identity entity.Identity) (*dto.ProfileResponse, error) {
	kind, ok := u.kinds[identity.Role]
	if !ok {
		return nil, apperror.ErrAccountNotFound
	}

	if u.profileCache != nil {
		cached := kind.newProfile()
		hit, err := u.profileCache.Get(ctx, kind.role, identity.ID, cached)
		if err != nil {
			u.log.Warnf("Failed to read profile cache: %+v", err)
		} else if hit {
			return &dto.ProfileResponse{User: cached}, nil
		}
	}

	account, err := kind.findByID(ctx, identity.ID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound
	}

	profile := kind.profile(account)
	if u.profileCache != nil {
		if err := u.profileCache.Set(ctx, kind.role, identity.ID, profile); err != nil {
			u.log.Warnf("Failed to write profile cache: %+v", err)
		}
	}

	return &dto.ProfileResponse{User: profile}, nil
}

func (u *authUsecase) Authenticate(ctx context.Context, rawToken string) (*entity.Identity, error) {
	claims, err := u.jwtService.Verify(rawToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwt.AccessToken {
		return nil, apperror.ErrInvalidToken
	}

	identity := entity.Identity{ID: claims.ID, Email: claims.Email, Role: entity.Role(claims.Role)}
	kind, ok := u.kinds[identity.Role]
	if !ok {
		return nil, apperror.ErrInvalidToken
	}

	// Status is read from the store on every request.
	account, err := kind.findByID(ctx, identity.ID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound
	}
	if !account.Active() {
		return nil, apperror.ErrAccountDeactivated
	}

	return &identity, nil
}

// login is the credential check shared by every account kind. Unknown email
// and wrong password return the same error.
func (u *authUsecase) login(ctx context.Context, kind *accountKind, email, password string) (entity.Account, error) {
	account, err := kind.findCredentials(ctx, normalizeEmail(email))
	if err != nil {
		u.log.Warnf("Failed to find %s by email: %+v", kind.role, err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}
	if account == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if kind.beforeVerify != nil {
		if err := kind.beforeVerify(account); err != nil {
			return nil, err
		}
	}

	ok, err := u.hasher.Verify(ctx, password, account.PasswordDigest())
	if err != nil {
		u.log.Warnf("Failed to verify password: %+v", err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}
	if !ok {
		return nil, apperror.ErrInvalidCredentials
	}

	if kind.afterVerify != nil {
		if err := kind.afterVerify(account); err != nil {
			return nil, err
		}
	}

	return account, nil
}

// loggedIn records a completed login. Callers run it only after every store
// write and token issue succeeded.
func (u *authUsecase) loggedIn(ctx context.Context, kind *accountKind, account entity.Account) {
	u.audit(ctx, account, kind.auditAction)
	u.publish(ctx, events.AccountLoggedIn, events.LoginEvent{
		AccountID:  account.AccountID(),
		Role:       kind.role.String(),
		LoggedInAt: time.Now().UTC(),
	})
}

func (u *authUsecase) invalidateProfile(ctx context.Context, role entity.Role, id uuid.UUID) {
	if u.profileCache == nil {
		return
	}
	if err := u.profileCache.Delete(ctx, role, id); err != nil {
		u.log.Warnf("Failed to invalidate profile cache: %+v", err)
	}
}

func (u *authUsecase) issuePair(patient *entity.Patient) (*dto.AuthResponse, error) {
	identity := identityOf(patient)

	accessToken, _, err := u.jwtService.Issue(identity, jwt.AccessToken)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}

	refreshToken, _, err := u.jwtService.Issue(identity, jwt.RefreshToken)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, apperror.Internal(internalErrorMessage, err)
	}

	return &dto.AuthResponse{
		User:         converter.PatientToResponse(patient),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) audit(ctx context.Context, account entity.Account, action string) {
	if u.auditService == nil {
		return
	}
	// Errors are logged by the service; auditing never fails a request.
	_ = u.auditService.Record(ctx, account, action, nil)
}

func (u *authUsecase) publish(ctx context.Context, subject string, payload interface{}) {
	if err := u.publisher.Publish(ctx, subject, payload); err != nil {
		u.log.Warnf("Failed to publish %s event: %+v", subject, err)
	}
}

func identityOf(account entity.Account) jwt.Identity {
	return jwt.Identity{
		ID:    account.AccountID(),
		Email: account.AccountEmail(),
		Role:  account.AccountRole().String(),
	}
}
