//go:build integration

package integration

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/event"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/port"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
	pg "github.com/msouga/VerificacionCrediticia-sub001/internal/infrastructure/persistence/postgres"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/events"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/money"
	"github.com/msouga/VerificacionCrediticia-sub001/pkg/testutil"
)

func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..",
		"internal", "infrastructure", "persistence", "postgres", "migrations")
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pc := testutil.NewPostgresContainer(ctx, t)
	t.Cleanup(func() { pc.Cleanup(t) })

	pc.RunMigrations(t, migrationsDir())

	return pc.Pool
}

func newTestCaseFile(t *testing.T) model.CaseFile {
	t.Helper()
	cf, err := model.NewCaseFile(
		testutil.TestTenantID,
		testutil.TestApplicantCURP,
		testutil.TestCompanyRFC,
		"CARLOS GOMEZ",
		"ACME SA DE CV",
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return cf.ClearEvents()
}

func newTestGraph(t *testing.T) *model.Graph {
	t.Helper()
	graph := model.NewGraph()

	balance := money.New(decimal.NewFromInt(120000), money.MXN)
	require.NoError(t, graph.AddNode(&model.NetworkNode{
		ID:     testutil.TestApplicantCURP,
		Kind:   valueobject.EntityKindPerson,
		Name:   "CARLOS GOMEZ",
		Depth:  0,
		Score:  decimal.NewFromInt(750),
		Level:  valueobject.RiskLevelLow,
		Status: valueobject.CreditStatusNormal,
		Debts: []model.DebtRecord{{
			Creditor:           "BANCO AZTECA",
			DebtType:           "CREDITO SIMPLE",
			OriginalAmount:     balance,
			OutstandingBalance: balance,
			DaysOverdue:        0,
			Qualification:      "A",
		}},
	}))
	require.NoError(t, graph.AddNode(&model.NetworkNode{
		ID:     testutil.TestCompanyRFC,
		Kind:   valueobject.EntityKindCompany,
		Name:   "ACME SA DE CV",
		Depth:  0,
		Score:  decimal.NewFromInt(350),
		Level:  valueobject.RiskLevelHigh,
		Status: valueobject.CreditStatusDelinquent,
	}))
	require.NoError(t, graph.AddConnection(model.Connection{
		SourceID:     testutil.TestApplicantCURP,
		TargetID:     testutil.TestCompanyRFC,
		RelationType: "SHAREHOLDER",
	}))
	graph.AddDiagnostic("RFC-GONE-001", 1, "bureau lookup failed")
	return graph
}

func TestCaseFileRepo_Roundtrip(t *testing.T) {
	pool := setupTestDB(t)
	repo := pg.NewCaseFileRepo(pool)
	ctx := context.Background()

	cf := newTestCaseFile(t)
	require.NoError(t, repo.Save(ctx, cf))

	loaded, err := repo.FindByID(ctx, cf.TenantID(), cf.ID())
	require.NoError(t, err)
	assert.Equal(t, cf.ID(), loaded.ID())
	assert.Equal(t, testutil.TestApplicantCURP, loaded.ApplicantID())
	assert.True(t, loaded.Status().Equal(valueobject.CaseFileStatusOpen))
	assert.Equal(t, 1, loaded.Version())

	// Transition and save again; the version must advance.
	evaluating, err := loaded.BeginEvaluation(time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, evaluating))

	reloaded, err := repo.FindByID(ctx, cf.TenantID(), cf.ID())
	require.NoError(t, err)
	assert.True(t, reloaded.Status().Equal(valueobject.CaseFileStatusEvaluating))
	assert.Equal(t, 2, reloaded.Version())

	// Attaching advances the version again, completing the two-save cycle
	// one evaluation run performs.
	evaluated, err := reloaded.AttachEvaluation("eval-round-001", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, evaluated))

	attached, err := repo.FindByID(ctx, cf.TenantID(), cf.ID())
	require.NoError(t, err)
	assert.True(t, attached.Status().Equal(valueobject.CaseFileStatusEvaluated))
	assert.Equal(t, "eval-round-001", attached.LatestEvaluationID())
	assert.Equal(t, 3, attached.Version())

	// A save from a stale snapshot must hit the optimistic lock.
	staleCopy, err := loaded.BeginEvaluation(time.Now().UTC())
	require.NoError(t, err)
	err = repo.Save(ctx, staleCopy)
	require.Error(t, err)

	list, err := repo.List(ctx, cf.TenantID(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, cf.TenantID(), cf.ID()))
	_, err = repo.FindByID(ctx, cf.TenantID(), cf.ID())
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, cf.TenantID(), cf.ID()), port.ErrNotFound)
}

func TestEvaluationRepo_GraphRoundtrip(t *testing.T) {
	pool := setupTestDB(t)
	caseRepo := pg.NewCaseFileRepo(pool)
	evalRepo := pg.NewEvaluationRepo(pool)
	ctx := context.Background()

	cf := newTestCaseFile(t)
	require.NoError(t, caseRepo.Save(ctx, cf))

	graph := newTestGraph(t)
	alert := model.NewAlert(
		model.AlertKindDelinquency,
		valueobject.AlertSeverityCritical,
		testutil.TestCompanyRFC,
		0,
		"ACME SA DE CV reported as DELINQUENT at depth 0",
	)
	result, err := model.NewEvaluationResult(
		cf.TenantID(), cf.ID(), cf.ApplicantID(), cf.CompanyID(),
		decimal.NewFromInt(55),
		valueobject.RecommendationManualReview,
		valueobject.RiskLevelModerate,
		[]model.Alert{alert},
		graph,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	require.NoError(t, evalRepo.Save(ctx, result.ClearEvents()))

	loaded, err := evalRepo.FindByID(ctx, cf.TenantID(), result.ID())
	require.NoError(t, err)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(55), loaded.FinalScore())
	assert.Equal(t, "MANUAL_REVIEW", loaded.Recommendation().String())

	require.Len(t, loaded.Alerts(), 1)
	assert.Equal(t, model.AlertKindDelinquency, loaded.Alerts()[0].Kind)

	// The graph snapshot survives the JSONB round trip intact.
	lg := loaded.Graph()
	require.NotNil(t, lg)
	assert.Len(t, lg.Nodes(), 2)
	assert.Len(t, lg.Connections(), 1)
	assert.Len(t, lg.Diagnostics(), 1)
	applicant, ok := lg.Node(testutil.TestApplicantCURP)
	require.True(t, ok)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(750), applicant.Score)
	require.Len(t, applicant.Debts, 1)
	assert.Equal(t, "BANCO AZTECA", applicant.Debts[0].Creditor)
	assert.Equal(t, "MXN", applicant.Debts[0].OutstandingBalance.Currency().Code())

	latest, err := evalRepo.FindLatestByCaseFile(ctx, cf.TenantID(), cf.ID())
	require.NoError(t, err)
	assert.Equal(t, result.ID(), latest.ID())
}

func TestRuleRepo_SeededDefaults(t *testing.T) {
	pool := setupTestDB(t)
	repo := pg.NewRuleRepo(pool)
	ctx := context.Background()

	rules, err := repo.ActiveRules(ctx, testutil.TestTenantID)
	require.NoError(t, err)
	require.NotEmpty(t, rules, "default tenant ships with seeded rules")

	for i := 1; i < len(rules); i++ {
		assert.LessOrEqual(t, rules[i-1].Order, rules[i].Order)
	}

	policy, err := repo.DepthWeightPolicy(ctx, testutil.TestTenantID)
	require.NoError(t, err)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(1), policy.WeightAt(0))
	assert.Equal(t, 2, policy.MaxDepth())
}

func TestDocumentRepo_FindUnprocessed(t *testing.T) {
	pool := setupTestDB(t)
	caseRepo := pg.NewCaseFileRepo(pool)
	docRepo := pg.NewDocumentRepo(pool)
	ctx := context.Background()

	cf := newTestCaseFile(t)
	require.NoError(t, caseRepo.Save(ctx, cf))

	uploaded, err := model.NewDocument(cf.TenantID(), cf.ID(), "INE", "default/ine-front.png", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, docRepo.Save(ctx, uploaded))

	processing, err := uploaded.MarkProcessing(time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, docRepo.Save(ctx, processing))
	done, err := processing.MarkProcessed(map[string]string{"curp": testutil.TestApplicantCURP}, time.Now().UTC())
	require.NoError(t, err)

	second, err := model.NewDocument(cf.TenantID(), cf.ID(), "CONSTANCIA_FISCAL", "default/constancia.pdf", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, docRepo.Save(ctx, second))

	pending, err := docRepo.FindUnprocessed(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, docRepo.Save(ctx, done.ClearEvents()))

	pending, err = docRepo.FindUnprocessed(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID(), pending[0].ID())

	loaded, err := docRepo.FindByID(ctx, cf.TenantID(), done.ID())
	require.NoError(t, err)
	assert.Equal(t, testutil.TestApplicantCURP, loaded.ExtractedFields()["curp"])
}

func TestOutboxRepo_StoreFetchMark(t *testing.T) {
	pool := setupTestDB(t)
	repo := pg.NewOutboxRepo(pool)
	ctx := context.Background()

	evts := []event.DomainEvent{
		event.NewCaseFileCreated("case-001", testutil.TestTenantID, testutil.TestApplicantCURP, testutil.TestCompanyRFC),
		event.NewCaseFileClosed("case-001", testutil.TestTenantID, "withdrawn"),
	}
	entries := make([]events.OutboxEntry, 0, len(evts))
	for _, evt := range evts {
		entries = append(entries, events.NewOutboxEntry(evt))
	}
	require.NoError(t, repo.Store(ctx, entries))

	// Storing the same batch again is a no-op.
	require.NoError(t, repo.Store(ctx, entries))

	fetched, err := repo.FetchUnpublished(ctx, 10)
	require.NoError(t, err)
	require.Len(t, fetched, 2)
	assert.Equal(t, "verification.case_file.created", fetched[0].EventType)

	require.NoError(t, repo.MarkPublished(ctx, []string{fetched[0].ID}))

	fetched, err = repo.FetchUnpublished(ctx, 10)
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, "verification.case_file.closed", fetched[0].EventType)
}
