package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"solhub/config"
	"solhub/internal/domain/entity"
	"solhub/internal/domain/repository"
	"solhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// The shared fakes below are map-backed stand-ins for the GORM repositories
// and infra collaborators, so the services can be exercised without a
// database, broker or SMTP server.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- repositories ---

type fakeEnterpriseRepo struct {
	enterprises map[uuid.UUID]*entity.Enterprise
}

func newFakeEnterpriseRepo() *fakeEnterpriseRepo {
	return &fakeEnterpriseRepo{enterprises: make(map[uuid.UUID]*entity.Enterprise)}
}

func (r *fakeEnterpriseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Enterprise, error) {
	if e, ok := r.enterprises[id]; ok {
		cloned := *e

		return &cloned, nil
	}

	return nil, repository.ErrEnterpriseNotFound
}

func (r *fakeEnterpriseRepo) FindByEmail(_ context.Context, email string) (*entity.Enterprise, error) {
	for _, e := range r.enterprises {
		if e.Email == email {
			cloned := *e

			return &cloned, nil
		}
	}

	return nil, repository.ErrEnterpriseNotFound
}

func (r *fakeEnterpriseRepo) ExistsByEmailOrTaxID(_ context.Context, email, taxID string) (bool, error) {
	for _, e := range r.enterprises {
		if e.Email == email || e.TaxID == taxID {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeEnterpriseRepo) Create(_ context.Context, enterprise *entity.Enterprise) error {
	if enterprise.ID == uuid.Nil {
		enterprise.ID = uuid.New()
	}
	cloned := *enterprise
	r.enterprises[enterprise.ID] = &cloned

	return nil
}

func (r *fakeEnterpriseRepo) Update(_ context.Context, enterprise *entity.Enterprise) error {
	if _, ok := r.enterprises[enterprise.ID]; !ok {
		return repository.ErrEnterpriseNotFound
	}
	cloned := *enterprise
	r.enterprises[enterprise.ID] = &cloned

	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cloned := *u

		return &cloned, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cloned := *u

			return &cloned, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) ListByEnterprise(_ context.Context, enterpriseID uuid.UUID) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.EnterpriseID == enterpriseID {
			cloned := *u
			out = append(out, &cloned)
		}
	}

	return out, nil
}

func (r *fakeUserRepo) ExistsByEmailOrCPF(_ context.Context, email, cpf string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.CPF == cpf {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

type fakeSolutionRepo struct {
	solutions map[uuid.UUID]*entity.Solution
}

func newFakeSolutionRepo() *fakeSolutionRepo {
	return &fakeSolutionRepo{solutions: make(map[uuid.UUID]*entity.Solution)}
}

func (r *fakeSolutionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Solution, error) {
	if s, ok := r.solutions[id]; ok {
		cloned := *s

		return &cloned, nil
	}

	return nil, repository.ErrSolutionNotFound
}

func (r *fakeSolutionRepo) ListByEnterprise(_ context.Context, enterpriseID uuid.UUID) ([]*entity.Solution, error) {
	var out []*entity.Solution
	for _, s := range r.solutions {
		if s.EnterpriseID == enterpriseID {
			cloned := *s
			out = append(out, &cloned)
		}
	}

	return out, nil
}

func (r *fakeSolutionRepo) Create(_ context.Context, solution *entity.Solution) error {
	if solution.ID == uuid.Nil {
		solution.ID = uuid.New()
	}
	cloned := *solution
	r.solutions[solution.ID] = &cloned

	return nil
}

func (r *fakeSolutionRepo) Update(_ context.Context, solution *entity.Solution) error {
	if _, ok := r.solutions[solution.ID]; !ok {
		return repository.ErrSolutionNotFound
	}
	cloned := *solution
	r.solutions[solution.ID] = &cloned

	return nil
}

func (r *fakeSolutionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.solutions[id]; !ok {
		return repository.ErrSolutionNotFound
	}
	delete(r.solutions, id)

	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.SolutionCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.SolutionCategory)}
}

func (r *fakeCategoryRepo) ExistsByName(_ context.Context, enterpriseID uuid.UUID, name string) (bool, error) {
	for _, c := range r.categories {
		if c.EnterpriseID == enterpriseID && c.Name == name {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeCategoryRepo) ListByEnterprise(_ context.Context, enterpriseID uuid.UUID) ([]*entity.SolutionCategory, error) {
	var out []*entity.SolutionCategory
	for _, c := range r.categories {
		if c.EnterpriseID == enterpriseID {
			cloned := *c
			out = append(out, &cloned)
		}
	}

	return out, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.SolutionCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	cloned := *category
	r.categories[category.ID] = &cloned

	return nil
}

// --- transaction manager ---

type fakeRepoFactory struct {
	enterpriseRepo repository.EnterpriseRepository
	userRepo       repository.UserRepository
	solutionRepo   repository.SolutionRepository
	categoryRepo   repository.CategoryRepository
}

func (f *fakeRepoFactory) EnterpriseRepo() repository.EnterpriseRepository { return f.enterpriseRepo }
func (f *fakeRepoFactory) UserRepo() repository.UserRepository             { return f.userRepo }
func (f *fakeRepoFactory) SolutionRepo() repository.SolutionRepository     { return f.solutionRepo }
func (f *fakeRepoFactory) CategoryRepo() repository.CategoryRepository     { return f.categoryRepo }

type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

// --- infra collaborators ---

// fakeHasher uses a reversible prefix scheme instead of bcrypt to keep the
// tests fast.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct{}

func (fakeTokenService) IssueAccess(subjectID uuid.UUID) (string, error) {
	return "access:" + subjectID.String(), nil
}

func (fakeTokenService) IssueRefresh(subjectID uuid.UUID) (string, error) {
	return "refresh:" + subjectID.String(), nil
}

func (fakeTokenService) VerifyAccess(token string) (uuid.UUID, error) {
	return parseFakeToken(token, "access:")
}

func (fakeTokenService) VerifyRefresh(token string) (uuid.UUID, error) {
	return parseFakeToken(token, "refresh:")
}

func (fakeTokenService) AccessTokenDuration() time.Duration {
	return time.Hour
}

func parseFakeToken(token, prefix string) (uuid.UUID, error) {
	if !strings.HasPrefix(token, prefix) {
		return uuid.Nil, errors.New("invalid token")
	}

	return uuid.Parse(strings.TrimPrefix(token, prefix))
}

type sentMail struct {
	creds service.Credentials
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *fakeMailer) SendCredentials(_ context.Context, creds service.Credentials) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{creds: creds})

	return nil
}

type fakeStorage struct {
	removed []string
}

func (s *fakeStorage) PresignUpload(_ context.Context, enterpriseID string, upload service.FileUpload) (*service.PresignedFile, error) {
	key := fmt.Sprintf("%s/%s.%s", enterpriseID, upload.Name, upload.Extension)

	return &service.PresignedFile{
		UploadURL: "https://storage.test/upload/" + key,
		PublicURL: "https://storage.test/public/" + key,
	}, nil
}

func (s *fakeStorage) Remove(_ context.Context, publicURL string) error {
	s.removed = append(s.removed, publicURL)

	return nil
}

// --- fixture wiring ---

type testFixture struct {
	enterpriseRepo *fakeEnterpriseRepo
	userRepo       *fakeUserRepo
	solutionRepo   *fakeSolutionRepo
	categoryRepo   *fakeCategoryRepo
	txManager      *fakeTxManager
	resolver       *OwnershipResolver
	mailer         *fakeMailer
	storage        *fakeStorage
}

func newTestFixture() *testFixture {
	enterpriseRepo := newFakeEnterpriseRepo()
	userRepo := newFakeUserRepo()
	solutionRepo := newFakeSolutionRepo()
	categoryRepo := newFakeCategoryRepo()

	return &testFixture{
		enterpriseRepo: enterpriseRepo,
		userRepo:       userRepo,
		solutionRepo:   solutionRepo,
		categoryRepo:   categoryRepo,
		txManager: &fakeTxManager{factory: &fakeRepoFactory{
			enterpriseRepo: enterpriseRepo,
			userRepo:       userRepo,
			solutionRepo:   solutionRepo,
			categoryRepo:   categoryRepo,
		}},
		resolver: NewOwnershipResolver(OwnershipResolverParams{
			EnterpriseRepo: enterpriseRepo,
			UserRepo:       userRepo,
			SolutionRepo:   solutionRepo,
		}),
		mailer:  &fakeMailer{},
		storage: &fakeStorage{},
	}
}

func (f *testFixture) authConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{GeneratedPasswordLength: 12}}
}

func (f *testFixture) seedEnterprise(active bool) *entity.Enterprise {
	enterprise := &entity.Enterprise{
		ID:           uuid.New(),
		Name:         "Acme Corp",
		TaxID:        "12345678000190",
		Email:        fmt.Sprintf("contact+%s@acme.test", uuid.NewString()[:8]),
		PasswordHash: "hashed:acme-password",
		IsActive:     active,
	}
	f.enterpriseRepo.enterprises[enterprise.ID] = enterprise

	return enterprise
}

func (f *testFixture) seedUser(enterpriseID uuid.UUID, active bool) *entity.User {
	user := &entity.User{
		ID:           uuid.New(),
		EnterpriseID: enterpriseID,
		Type:         "analyst",
		FirstName:    "Ana",
		LastName:     "Silva",
		CPF:          uuid.NewString()[:11],
		Email:        fmt.Sprintf("ana+%s@acme.test", uuid.NewString()[:8]),
		PasswordHash: "hashed:user-password",
		IsActive:     active,
	}
	f.userRepo.users[user.ID] = user

	return user
}

func (f *testFixture) seedSolution(enterpriseID, userID uuid.UUID) *entity.Solution {
	solution := &entity.Solution{
		ID:           uuid.New(),
		EnterpriseID: enterpriseID,
		UserID:       userID,
		Title:        "VPN setup",
		Category:     "Networking",
		Description:  "How to configure the site-to-site VPN",
	}
	f.solutionRepo.solutions[solution.ID] = solution

	return solution
}
