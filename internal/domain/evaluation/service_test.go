package evaluation_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/evaluation"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/user"
	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeEvaluationRepository struct {
	upsertFn          func(ctx context.Context, result *evaluation.Result) error
	findHistoryFn     func(ctx context.Context, userID ulid.ULID, from, to *time.Time, pagination *pkg.PaginationParams) ([]*evaluation.Result, int64, error)
	findByIDAndUserFn func(ctx context.Context, id, userID ulid.ULID) (*evaluation.Result, error)
}

func (f *fakeEvaluationRepository) Upsert(ctx context.Context, result *evaluation.Result) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, result)
	}
	return nil
}

func (f *fakeEvaluationRepository) FindHistory(ctx context.Context, userID ulid.ULID, from, to *time.Time, pagination *pkg.PaginationParams) ([]*evaluation.Result, int64, error) {
	if f.findHistoryFn != nil {
		return f.findHistoryFn(ctx, userID, from, to, pagination)
	}
	return nil, 0, nil
}

func (f *fakeEvaluationRepository) FindByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*evaluation.Result, error) {
	if f.findByIDAndUserFn != nil {
		return f.findByIDAndUserFn(ctx, id, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTransactionRepository struct {
	getInWindowFn func(ctx context.Context, userID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error)
	balanceAsOfFn func(ctx context.Context, userID, subcategoryID ulid.ULID, asOf time.Time) (decimal.Decimal, error)
}

func (f *fakeTransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return nil
}
func (f *fakeTransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	return nil
}
func (f *fakeTransactionRepository) SoftDelete(ctx context.Context, transactionID, userID ulid.ULID) error {
	return nil
}
func (f *fakeTransactionRepository) GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*transaction.Transaction, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTransactionRepository) GetAll(ctx context.Context, userID ulid.ULID, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	return nil, 0, nil
}
func (f *fakeTransactionRepository) CountByUser(ctx context.Context, userID ulid.ULID) (int64, error) {
	return 0, nil
}

func (f *fakeTransactionRepository) GetInWindow(ctx context.Context, userID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
	if f.getInWindowFn != nil {
		return f.getInWindowFn(ctx, userID, start, end)
	}
	return nil, nil
}

func (f *fakeTransactionRepository) BalanceAsOf(ctx context.Context, userID, subcategoryID ulid.ULID, asOf time.Time) (decimal.Decimal, error) {
	if f.balanceAsOfFn != nil {
		return f.balanceAsOfFn(ctx, userID, subcategoryID, asOf)
	}
	return decimal.Zero, nil
}

type fakeRatioRepository struct {
	getAllActiveFn func(ctx context.Context) ([]*ratio.Ratio, error)
	getByIDFn      func(ctx context.Context, ratioID ulid.ULID) (*ratio.Ratio, error)
}

func (f *fakeRatioRepository) GetAllActive(ctx context.Context) ([]*ratio.Ratio, error) {
	if f.getAllActiveFn != nil {
		return f.getAllActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeRatioRepository) GetByID(ctx context.Context, ratioID ulid.ULID) (*ratio.Ratio, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, ratioID)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeUserRepository struct {
	getByIdFn func(ctx context.Context, userID ulid.ULID) (*user.User, error)
}

func (f *fakeUserRepository) GetById(ctx context.Context, userID ulid.ULID) (*user.User, error) {
	if f.getByIdFn != nil {
		return f.getByIdFn(ctx, userID)
	}
	return &user.User{Id: userID}, nil
}

func (f *fakeUserRepository) DeleteCascade(ctx context.Context, userID ulid.ULID) error {
	return nil
}

func newEvaluationService(
	evalRepo *fakeEvaluationRepository,
	txRepo *fakeTransactionRepository,
	ratioRepo *fakeRatioRepository,
	userRepo *fakeUserRepository,
) *evaluation.Service {
	return evaluation.NewService(
		evalRepo,
		txRepo,
		ratio.NewService(ratioRepo),
		user.NewService(userRepo),
		evaluation.NewAggregator(txRepo),
	)
}

func liquidityRatio() *ratio.Ratio {
	id := ratio.RatioID(ratio.CodeLiquidity)
	return &ratio.Ratio{
		Id:                    id,
		Code:                  ratio.CodeLiquidity,
		Title:                 "Rasio Likuiditas",
		Multiplier:            1,
		LowerBound:            bound(3),
		IsLowerBoundInclusive: true,
		Policy:                ratio.PolicyLiquidity,
		Components: []*ratio.Component{
			{
				Id:              ulid.Make(),
				RatioId:         id,
				SubcategoryId:   hierarchy.SubcategoryID(hierarchy.SubUangTunai),
				Side:            ratio.SideNumerator,
				Sign:            1,
				SubcategoryName: hierarchy.SubUangTunai,
				AccountTypeName: hierarchy.AccountTypeAsset,
			},
			{
				Id:              ulid.Make(),
				RatioId:         id,
				SubcategoryId:   hierarchy.SubcategoryID(hierarchy.SubMakanan),
				Side:            ratio.SideDenominator,
				Sign:            1,
				SubcategoryName: hierarchy.SubMakanan,
				AccountTypeName: hierarchy.AccountTypeExpense,
			},
		},
	}
}

func TestCalculateAndStoreLiquidityScenario(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	start := day(2025, 3, 1)
	end := day(2025, 3, 31)

	var stored *evaluation.Result
	evalRepo := &fakeEvaluationRepository{
		upsertFn: func(ctx context.Context, result *evaluation.Result) error {
			stored = result
			return nil
		},
	}

	txRepo := &fakeTransactionRepository{
		getInWindowFn: func(ctx context.Context, uid ulid.ULID, s, e time.Time) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{SubcategoryId: hierarchy.SubcategoryID(hierarchy.SubMakanan), Amount: decimal.NewFromInt(300), Date: day(2025, 3, 10)},
			}, nil
		},
		balanceAsOfFn: func(ctx context.Context, uid, sid ulid.ULID, asOf time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(1200), nil
		},
	}

	ratioRepo := &fakeRatioRepository{
		getAllActiveFn: func(ctx context.Context) ([]*ratio.Ratio, error) {
			return []*ratio.Ratio{liquidityRatio()}, nil
		},
	}

	svc := newEvaluationService(evalRepo, txRepo, ratioRepo, &fakeUserRepository{})
	results, err := svc.CalculateAndStore(context.Background(), userID, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Value != 4 {
		t.Fatalf("1200/300 should be 4, got %v", results[0].Value)
	}
	if results[0].Status != evaluation.StatusIdeal {
		t.Fatalf("4 months of cover meets the >=3 bound, got %s", results[0].Status)
	}
	if results[0].IdealRangeDisplay == nil || *results[0].IdealRangeDisplay != "≥ 3 Bulan" {
		t.Fatalf("unexpected ideal range display: %v", results[0].IdealRangeDisplay)
	}

	if stored == nil {
		t.Fatal("expected an upserted snapshot")
	}
	if stored.UserId != userID {
		t.Fatalf("snapshot user mismatch: %s", stored.UserId)
	}
	if !stored.StartDate.Equal(start) || !stored.EndDate.Equal(end) {
		t.Fatalf("snapshot must keep the requested window, got %v..%v", stored.StartDate, stored.EndDate)
	}
	if stored.Value != 4 || stored.Status != evaluation.StatusIdeal {
		t.Fatalf("snapshot value/status mismatch: %v %s", stored.Value, stored.Status)
	}
}

func TestCalculateAndStoreClampsUnboundedLiquidity(t *testing.T) {
	t.Parallel()

	var stored *evaluation.Result
	evalRepo := &fakeEvaluationRepository{
		upsertFn: func(ctx context.Context, result *evaluation.Result) error {
			stored = result
			return nil
		},
	}

	// Liquid assets but no expenses at all in the window.
	txRepo := &fakeTransactionRepository{
		balanceAsOfFn: func(ctx context.Context, uid, sid ulid.ULID, asOf time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(500), nil
		},
	}

	ratioRepo := &fakeRatioRepository{
		getAllActiveFn: func(ctx context.Context) ([]*ratio.Ratio, error) {
			return []*ratio.Ratio{liquidityRatio()}, nil
		},
	}

	svc := newEvaluationService(evalRepo, txRepo, ratioRepo, &fakeUserRepository{})
	results, err := svc.CalculateAndStore(context.Background(), ulid.Make(), day(2025, 3, 1), day(2025, 3, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Status != evaluation.StatusIncomplete {
		t.Fatalf("unbounded liquidity must flag INCOMPLETE, got %s", results[0].Status)
	}
	if results[0].Value != 0 {
		t.Fatalf("non-finite value must be stored as 0, got %v", results[0].Value)
	}
	if stored == nil || stored.Value != 0 || stored.Status != evaluation.StatusIncomplete {
		t.Fatalf("snapshot must hold the clamped value and INCOMPLETE status, got %+v", stored)
	}
}

func TestCalculateAndStoreIdempotentRecalculation(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	start := day(2025, 3, 1)
	end := day(2025, 3, 31)

	savingID := ratio.RatioID(ratio.CodeSaving)
	saving := &ratio.Ratio{
		Id:                    savingID,
		Code:                  ratio.CodeSaving,
		Title:                 "Rasio Tabungan",
		Multiplier:            100,
		LowerBound:            bound(10),
		IsLowerBoundInclusive: true,
		Policy:                ratio.PolicyStandard,
		Components: []*ratio.Component{
			{
				Id:              ulid.Make(),
				RatioId:         savingID,
				SubcategoryId:   hierarchy.SubcategoryID(hierarchy.SubSetoranTabungan),
				Side:            ratio.SideNumerator,
				Sign:            1,
				SubcategoryName: hierarchy.SubSetoranTabungan,
				AccountTypeName: hierarchy.AccountTypeExpense,
			},
			{
				Id:              ulid.Make(),
				RatioId:         savingID,
				SubcategoryId:   hierarchy.SubcategoryID(hierarchy.SubGaji),
				Side:            ratio.SideDenominator,
				Sign:            1,
				SubcategoryName: hierarchy.SubGaji,
				AccountTypeName: hierarchy.AccountTypeIncome,
			},
		},
	}

	// Store keyed by the upsert conflict target, like the real table's
	// unique index.
	snapshots := make(map[string]*evaluation.Result)
	windowKey := func(r *evaluation.Result) string {
		return fmt.Sprintf("%s|%s|%s|%s",
			r.UserId, r.RatioId,
			r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"))
	}

	var upserts int
	evalRepo := &fakeEvaluationRepository{
		upsertFn: func(ctx context.Context, result *evaluation.Result) error {
			upserts++
			snapshots[windowKey(result)] = result
			return nil
		},
	}

	txRepo := &fakeTransactionRepository{
		getInWindowFn: func(ctx context.Context, uid ulid.ULID, s, e time.Time) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{SubcategoryId: hierarchy.SubcategoryID(hierarchy.SubMakanan), Amount: decimal.NewFromInt(300), Date: day(2025, 3, 10)},
				{SubcategoryId: hierarchy.SubcategoryID(hierarchy.SubSetoranTabungan), Amount: decimal.NewFromInt(200), Date: day(2025, 3, 3)},
				{SubcategoryId: hierarchy.SubcategoryID(hierarchy.SubGaji), Amount: decimal.NewFromInt(1000), Date: day(2025, 3, 1)},
			}, nil
		},
		balanceAsOfFn: func(ctx context.Context, uid, sid ulid.ULID, asOf time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(1200), nil
		},
	}

	ratioRepo := &fakeRatioRepository{
		getAllActiveFn: func(ctx context.Context) ([]*ratio.Ratio, error) {
			return []*ratio.Ratio{liquidityRatio(), saving}, nil
		},
	}

	svc := newEvaluationService(evalRepo, txRepo, ratioRepo, &fakeUserRepository{})

	if _, err := svc.CalculateAndStore(context.Background(), userID, start, end); err != nil {
		t.Fatalf("unexpected error on first run: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("first run should store one snapshot per ratio, got %d", len(snapshots))
	}

	type firstRun struct {
		value        float64
		status       evaluation.Status
		calculatedAt time.Time
	}
	before := make(map[string]firstRun, len(snapshots))
	for key, snap := range snapshots {
		before[key] = firstRun{value: snap.Value, status: snap.Status, calculatedAt: snap.CalculatedAt}
	}

	time.Sleep(2 * time.Millisecond)

	if _, err := svc.CalculateAndStore(context.Background(), userID, start, end); err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}

	if upserts != 4 {
		t.Fatalf("both runs should upsert both ratios, got %d upserts", upserts)
	}
	if len(snapshots) != 2 {
		t.Fatalf("recalculation must not create new snapshots, got %d", len(snapshots))
	}

	for key, first := range before {
		second, ok := snapshots[key]
		if !ok {
			t.Fatalf("window %s disappeared on recalculation", key)
		}
		if second.Value != first.value || second.Status != first.status {
			t.Fatalf("unchanged transactions must keep value/status, got %v %s (was %v %s)",
				second.Value, second.Status, first.value, first.status)
		}
		if !second.CalculatedAt.After(first.calculatedAt) {
			t.Fatalf("recalculation must advance calculatedAt, got %v (was %v)",
				second.CalculatedAt, first.calculatedAt)
		}
	}
}

func TestCalculateAndStoreSkipsFailingRatio(t *testing.T) {
	t.Parallel()

	savingID := ratio.RatioID(ratio.CodeSaving)
	saving := &ratio.Ratio{
		Id:                    savingID,
		Code:                  ratio.CodeSaving,
		Title:                 "Rasio Tabungan",
		Multiplier:            100,
		LowerBound:            bound(10),
		IsLowerBoundInclusive: true,
		Policy:                ratio.PolicyStandard,
		Components: []*ratio.Component{
			{
				Id:              ulid.Make(),
				RatioId:         savingID,
				SubcategoryId:   hierarchy.SubcategoryID(hierarchy.SubSetoranTabungan),
				Side:            ratio.SideNumerator,
				Sign:            1,
				SubcategoryName: hierarchy.SubSetoranTabungan,
				AccountTypeName: hierarchy.AccountTypeExpense,
			},
			{
				Id:              ulid.Make(),
				RatioId:         savingID,
				SubcategoryId:   hierarchy.SubcategoryID(hierarchy.SubGaji),
				Side:            ratio.SideDenominator,
				Sign:            1,
				SubcategoryName: hierarchy.SubGaji,
				AccountTypeName: hierarchy.AccountTypeIncome,
			},
		},
	}

	var upserts int
	evalRepo := &fakeEvaluationRepository{
		upsertFn: func(ctx context.Context, result *evaluation.Result) error {
			upserts++
			if result.RatioId == ratio.RatioID(ratio.CodeLiquidity) {
				return errors.New("kolom tidak ditemukan")
			}
			return nil
		},
	}

	txRepo := &fakeTransactionRepository{
		getInWindowFn: func(ctx context.Context, uid ulid.ULID, s, e time.Time) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{SubcategoryId: hierarchy.SubcategoryID(hierarchy.SubSetoranTabungan), Amount: decimal.NewFromInt(200), Date: day(2025, 3, 3)},
				{SubcategoryId: hierarchy.SubcategoryID(hierarchy.SubGaji), Amount: decimal.NewFromInt(1000), Date: day(2025, 3, 1)},
			}, nil
		},
		balanceAsOfFn: func(ctx context.Context, uid, sid ulid.ULID, asOf time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(100), nil
		},
	}

	ratioRepo := &fakeRatioRepository{
		getAllActiveFn: func(ctx context.Context) ([]*ratio.Ratio, error) {
			return []*ratio.Ratio{liquidityRatio(), saving}, nil
		},
	}

	svc := newEvaluationService(evalRepo, txRepo, ratioRepo, &fakeUserRepository{})
	results, err := svc.CalculateAndStore(context.Background(), ulid.Make(), day(2025, 3, 1), day(2025, 3, 31))
	if err != nil {
		t.Fatalf("a failing ratio must not abort the batch: %v", err)
	}

	if upserts != 2 {
		t.Fatalf("both ratios should attempt an upsert, got %d", upserts)
	}
	if len(results) != 1 {
		t.Fatalf("only the surviving ratio belongs in the response, got %d", len(results))
	}
	if results[0].RatioCode != ratio.CodeSaving {
		t.Fatalf("expected %s, got %s", ratio.CodeSaving, results[0].RatioCode)
	}
	if results[0].Value != 20 {
		t.Fatalf("200/1000 at x100 should be 20, got %v", results[0].Value)
	}
	if results[0].Status != evaluation.StatusIdeal {
		t.Fatalf("20%% saving meets the >=10 bound, got %s", results[0].Status)
	}
}

func TestCalculateAndStoreSkipsRatioWithoutComponents(t *testing.T) {
	t.Parallel()

	hollow := &ratio.Ratio{
		Id:                    ratio.RatioID(ratio.CodeDebtService),
		Code:                  ratio.CodeDebtService,
		Title:                 "Rasio Cicilan Utang",
		Multiplier:            100,
		UpperBound:            bound(35),
		IsUpperBoundInclusive: true,
		Policy:                ratio.PolicyStandard,
	}

	var upserts int
	evalRepo := &fakeEvaluationRepository{
		upsertFn: func(ctx context.Context, result *evaluation.Result) error {
			upserts++
			return nil
		},
	}

	ratioRepo := &fakeRatioRepository{
		getAllActiveFn: func(ctx context.Context) ([]*ratio.Ratio, error) {
			return []*ratio.Ratio{hollow, liquidityRatio()}, nil
		},
	}

	svc := newEvaluationService(evalRepo, &fakeTransactionRepository{}, ratioRepo, &fakeUserRepository{})
	results, err := svc.CalculateAndStore(context.Background(), ulid.Make(), day(2025, 3, 1), day(2025, 3, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if upserts != 1 {
		t.Fatalf("only the liquidity ratio should reach the store, got %d upserts", upserts)
	}
	if len(results) != 1 || results[0].RatioCode != ratio.CodeLiquidity {
		t.Fatalf("a component-less standard ratio must be skipped, got %v", results)
	}
}

func TestCalculateAndStoreWindowValidation(t *testing.T) {
	t.Parallel()

	svc := newEvaluationService(
		&fakeEvaluationRepository{},
		&fakeTransactionRepository{},
		&fakeRatioRepository{},
		&fakeUserRepository{},
	)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"zero start", time.Time{}, day(2025, 3, 31)},
		{"zero end", day(2025, 3, 1), time.Time{}},
		{"end before start", day(2025, 3, 31), day(2025, 3, 1)},
		{"window longer than 92 days", day(2025, 1, 1), day(2025, 6, 1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.CalculateAndStore(context.Background(), ulid.Make(), tt.start, tt.end)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
			}
		})
	}

	t.Run("short window warns but proceeds", func(t *testing.T) {
		t.Parallel()

		_, err := svc.CalculateAndStore(context.Background(), ulid.Make(), day(2025, 3, 1), day(2025, 3, 7))
		if err != nil {
			t.Fatalf("short windows are allowed: %v", err)
		}
	})
}

func TestCalculateAndStoreUnknownUser(t *testing.T) {
	t.Parallel()

	svc := newEvaluationService(
		&fakeEvaluationRepository{},
		&fakeTransactionRepository{},
		&fakeRatioRepository{},
		&fakeUserRepository{
			getByIdFn: func(ctx context.Context, userID ulid.ULID) (*user.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		},
	)

	_, err := svc.CalculateAndStore(context.Background(), ulid.Make(), day(2025, 3, 1), day(2025, 3, 31))
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrUserNotFound.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrUserNotFound.Code, appErr.Code)
	}
}

func TestHistoryRangeValidation(t *testing.T) {
	t.Parallel()

	svc := newEvaluationService(
		&fakeEvaluationRepository{},
		&fakeTransactionRepository{},
		&fakeRatioRepository{},
		&fakeUserRepository{},
	)

	from := day(2025, 3, 31)
	to := day(2025, 3, 1)
	_, _, err := svc.History(context.Background(), ulid.Make(), &from, &to, nil)
	if err == nil {
		t.Fatal("expected a validation error for inverted range")
	}
}

func TestHistoryPassesThrough(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	want := []*evaluation.Result{
		{Id: ulid.Make(), UserId: userID, RatioCode: ratio.CodeSaving, Value: 20, Status: evaluation.StatusIdeal},
	}

	evalRepo := &fakeEvaluationRepository{
		findHistoryFn: func(ctx context.Context, uid ulid.ULID, from, to *time.Time, pagination *pkg.PaginationParams) ([]*evaluation.Result, int64, error) {
			if uid != userID {
				t.Fatalf("user id mismatch: %s", uid)
			}
			return want, 1, nil
		},
	}

	svc := newEvaluationService(evalRepo, &fakeTransactionRepository{}, &fakeRatioRepository{}, &fakeUserRepository{})
	got, total, err := svc.History(context.Background(), userID, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0] != want[0] {
		t.Fatalf("unexpected history result: %v (total %d)", got, total)
	}
}

func TestGetDetailReproducesSnapshotWindow(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	evaluationID := ulid.Make()
	r := liquidityRatio()

	snapshot := &evaluation.Result{
		Id:           evaluationID,
		UserId:       userID,
		RatioId:      r.Id,
		StartDate:    day(2025, 2, 1),
		EndDate:      day(2025, 2, 28),
		Value:        4,
		Status:       evaluation.StatusIdeal,
		CalculatedAt: day(2025, 3, 1),
	}

	evalRepo := &fakeEvaluationRepository{
		findByIDAndUserFn: func(ctx context.Context, id, uid ulid.ULID) (*evaluation.Result, error) {
			if id != evaluationID || uid != userID {
				return nil, gorm.ErrRecordNotFound
			}
			return snapshot, nil
		},
	}

	var windowedStart, windowedEnd time.Time
	txRepo := &fakeTransactionRepository{
		getInWindowFn: func(ctx context.Context, uid ulid.ULID, s, e time.Time) ([]*transaction.Transaction, error) {
			windowedStart, windowedEnd = s, e
			return []*transaction.Transaction{
				{SubcategoryId: hierarchy.SubcategoryID(hierarchy.SubMakanan), Amount: decimal.NewFromInt(300), Date: day(2025, 2, 10)},
			}, nil
		},
		balanceAsOfFn: func(ctx context.Context, uid, sid ulid.ULID, asOf time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(1200), nil
		},
	}

	ratioRepo := &fakeRatioRepository{
		getByIDFn: func(ctx context.Context, ratioID ulid.ULID) (*ratio.Ratio, error) {
			if ratioID != r.Id {
				return nil, gorm.ErrRecordNotFound
			}
			return r, nil
		},
	}

	svc := newEvaluationService(evalRepo, txRepo, ratioRepo, &fakeUserRepository{})
	detail, err := svc.GetDetail(context.Background(), evaluationID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !windowedStart.Equal(snapshot.StartDate) || !windowedEnd.Equal(snapshot.EndDate) {
		t.Fatalf("detail must re-read the stored window, got %v..%v", windowedStart, windowedEnd)
	}
	if detail.Value != snapshot.Value || detail.Status != snapshot.Status {
		t.Fatalf("detail must surface the stored value/status, got %v %s", detail.Value, detail.Status)
	}
	if detail.CalculatedNumerator != 1200 {
		t.Fatalf("expected numerator 1200, got %v", detail.CalculatedNumerator)
	}
	if detail.CalculatedDenominator != 300 {
		t.Fatalf("expected denominator 300, got %v", detail.CalculatedDenominator)
	}
	if len(detail.BreakdownComponents) == 0 {
		t.Fatal("expected conceptual sums in the detail")
	}
	if detail.RatioCode != ratio.CodeLiquidity {
		t.Fatalf("expected ratio code %s, got %s", ratio.CodeLiquidity, detail.RatioCode)
	}
}

func TestGetDetailNotFound(t *testing.T) {
	t.Parallel()

	svc := newEvaluationService(
		&fakeEvaluationRepository{},
		&fakeTransactionRepository{},
		&fakeRatioRepository{},
		&fakeUserRepository{},
	)

	_, err := svc.GetDetail(context.Background(), ulid.Make(), ulid.Make())
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrEvaluationNotFound.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrEvaluationNotFound.Code, appErr.Code)
	}
}
