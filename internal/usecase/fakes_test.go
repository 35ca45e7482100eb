package usecase

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/jwt"
	"hospital-management-api/pkg/password"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// memPatientRepo is an in-memory PatientRepository with a unique email index.
type memPatientRepo struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]*entity.Patient
	emailIdx map[string]uuid.UUID
}

func newMemPatientRepo() *memPatientRepo {
	return &memPatientRepo{byID: map[uuid.UUID]*entity.Patient{}, emailIdx: map[string]uuid.UUID{}}
}

func (r *memPatientRepo) Create(ctx context.Context, p *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.emailIdx[p.Email]; ok {
		return repository.ErrDuplicateKey
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.emailIdx[p.Email] = p.ID
	return nil
}

func (r *memPatientRepo) get(id uuid.UUID, withPassword bool) *entity.Patient {
	p, ok := r.byID[id]
	if !ok {
		return nil
	}
	cp := *p
	if !withPassword {
		cp.Password = ""
	}
	return &cp
}

func (r *memPatientRepo) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(r.emailIdx[email], false), nil
}

func (r *memPatientRepo) FindCredentialsByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(r.emailIdx[email], true), nil
}

func (r *memPatientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id, false), nil
}

func (r *memPatientRepo) Update(ctx context.Context, id uuid.UUID, patch entity.PatientPatch) (*entity.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(p)
	return r.get(id, false), nil
}

// stored returns the raw record, digest included.
func (r *memPatientRepo) stored(email string) *entity.Patient {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(r.emailIdx[email], true)
}

type memDoctorRepo struct {
	mu      sync.Mutex
	doctors map[string]*entity.Doctor
}

func newMemDoctorRepo() *memDoctorRepo {
	return &memDoctorRepo{doctors: map[string]*entity.Doctor{}}
}

func (r *memDoctorRepo) Create(ctx context.Context, d *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.doctors[d.Email]; ok {
		return repository.ErrDuplicateKey
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	cp := *d
	r.doctors[d.Email] = &cp
	return nil
}

func (r *memDoctorRepo) find(match func(*entity.Doctor) bool, withPassword bool) *entity.Doctor {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.doctors {
		if match(d) {
			cp := *d
			if !withPassword {
				cp.Password = ""
			}
			return &cp
		}
	}
	return nil
}

func (r *memDoctorRepo) FindCredentialsByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	return r.find(func(d *entity.Doctor) bool { return d.Email == email }, true), nil
}

func (r *memDoctorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return r.find(func(d *entity.Doctor) bool { return d.ID == id }, false), nil
}

type recordingAudit struct {
	mu      sync.Mutex
	actions []string
}

func (a *recordingAudit) Record(ctx context.Context, account entity.Account, action string, metadata entity.JSON) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
	return nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (p *recordingPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

// mapProfileCache stores JSON like the Redis cache does.
type mapProfileCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
}

func newMapProfileCache() *mapProfileCache {
	return &mapProfileCache{entries: map[string][]byte{}}
}

func profileCacheKey(role entity.Role, id uuid.UUID) string {
	return string(role) + ":" + id.String()
}

func (c *mapProfileCache) Get(ctx context.Context, role entity.Role, id uuid.UUID, out interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[profileCacheKey(role, id)]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, out)
}

func (c *mapProfileCache) Set(ctx context.Context, role entity.Role, id uuid.UUID, profile interface{}) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[profileCacheKey(role, id)] = raw
	return nil
}

func (c *mapProfileCache) Delete(ctx context.Context, role entity.Role, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, profileCacheKey(role, id))
	return nil
}

// fixedNow is the clock used by registration tests.
var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	patients  *memPatientRepo
	doctors   *memDoctorRepo
	audit     *recordingAudit
	publisher *recordingPublisher
	hasher    *password.Hasher
	jwt       *jwt.JWTService
	usecase   AuthUsecase
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  7 * 24 * time.Hour,
		RefreshExpiry: 30 * 24 * time.Hour,
		DoctorExpiry:  2 * time.Hour,
	}
}

func newTestEnv(t *testing.T, cache repository.ProfileCache) *testEnv {
	t.Helper()
	log := quietLogger()
	env := &testEnv{
		patients:  newMemPatientRepo(),
		doctors:   newMemDoctorRepo(),
		audit:     &recordingAudit{},
		publisher: &recordingPublisher{},
		hasher:    password.NewHasher(bcrypt.MinCost, 4),
		jwt:       jwt.NewJWTService(testJWTConfig()),
	}
	registration := NewRegistrationValidator(log, validator.NewValidator(), env.patients, func() time.Time { return fixedNow })
	var auditService service.AuditService = env.audit
	env.usecase = NewAuthUsecase(log, env.patients, env.doctors, registration, env.hasher, env.jwt, auditService, env.publisher, cache)
	return env
}

func (env *testEnv) seedDoctor(t *testing.T, email, plaintext string, status entity.DoctorStatus) *entity.Doctor {
	t.Helper()
	digest, err := env.hasher.Hash(context.Background(), plaintext)
	if err != nil {
		t.Fatal(err)
	}
	doctor := &entity.Doctor{FullName: "Gregory House", Email: email, Password: digest, Status: status}
	if err := env.doctors.Create(context.Background(), doctor); err != nil {
		t.Fatal(err)
	}
	return doctor
}
