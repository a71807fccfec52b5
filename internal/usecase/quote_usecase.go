package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"comunikapp/internal/domain/entities"
	"comunikapp/internal/domain/pricing"
	"comunikapp/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStoreID     = errors.New("invalid store id")
	ErrInvalidQuoteInput  = errors.New("invalid quote input")
	ErrStoreNotFound      = errors.New("store not found")
	ErrSettingsIncomplete = errors.New("store cost settings incomplete")
	ErrUnknownMaterial    = errors.New("unknown material reference")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteConflict      = errors.New("quote numbering conflict")
)

// MaterialLineInput references a catalog material and the quantity consumed.
type MaterialLineInput struct {
	MaterialID string
	Quantity   float64
}

// MachineLineInput references a registered machine and its usage hours.
type MachineLineInput struct {
	MachineID string
	HoursUsed float64
}

// LaborLineInput references a labor function and its worked hours.
type LaborLineInput struct {
	RoleID      string
	HoursWorked float64
}

// QuoteInput is the full calculation/creation command.
//
/// MarginPercent and TaxPercent are pointers: nil means "use the store
// default", a non-nil value overrides it even when 0.
type QuoteInput struct {
	ServiceName     string
	Description     string
	ClientID        string
	ProductionHours float64
	ProductQuantity int
	Materials       []MaterialLineInput
	Machines        []MachineLineInput
	Labor           []LaborLineInput
	MarginPercent   *float64
	TaxPercent      *float64
}

// QuoteUpdateInput is a partial update. Every field distinguishes "not
// provided" (nil) from "provided", so a margin or tax of exactly 0 is an
// honored override and an omitted field leaves the stored value alone.
type QuoteUpdateInput struct {
	ServiceName     *string
	Description     *string
	ClientID        *string
	ProductionHours *float64
	ProductQuantity *int
	Materials       []MaterialLineInput
	Machines        []MachineLineInput
	Labor           []LaborLineInput
	MarginPercent   *float64
	TaxPercent      *float64
}

// TouchesCosts reports whether the patch carries any cost-affecting field,
// which forces a full recomputation and wholesale line-item replacement.
func (in QuoteUpdateInput) TouchesCosts() bool {
	return in.ProductionHours != nil ||
		in.ProductQuantity != nil ||
		in.Materials != nil ||
		in.Machines != nil ||
		in.Labor != nil ||
		in.MarginPercent != nil ||
		in.TaxPercent != nil
}

// IQuoteUseCase exposes the pricing engine and the quote lifecycle.
//
//   - Calculate runs the engine only; no writes.
//   - Create computes a breakdown, draws a quote number and persists the
//     quote with its line items atomically.
//   - Update recomputes and replaces the snapshot when cost-affecting
//     fields are present, or applies a metadata-only patch otherwise.
type IQuoteUseCase interface {
	Calculate(ctx context.Context, storeID string, in QuoteInput) (entities.CostBreakdown, error)
	Create(ctx context.Context, storeID string, in QuoteInput) (entities.Quote, error)
	Update(ctx context.Context, storeID, id string, in QuoteUpdateInput) (entities.Quote, error)
	GetByID(ctx context.Context, storeID, id string) (entities.Quote, error)
	ListByStore(ctx context.Context, storeID string) ([]entities.Quote, error)
	Remove(ctx context.Context, storeID, id string) error
}

type QuoteUseCase struct {
	quotes    interfaces.IQuoteRepository
	settings  interfaces.ISettingsRepository
	materials interfaces.IMaterialRepository
	machines  interfaces.IMachineRepository
	roles     interfaces.IRoleRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	settings interfaces.ISettingsRepository,
	materials interfaces.IMaterialRepository,
	machines interfaces.IMachineRepository,
	roles interfaces.IRoleRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:    quotes,
		settings:  settings,
		materials: materials,
		machines:  machines,
		roles:     roles,
	}
}

func (u *QuoteUseCase) Calculate(ctx context.Context, storeID string, in QuoteInput) (entities.CostBreakdown, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.CostBreakdown{}, ErrInvalidStoreID
	}
	return u.buildBreakdown(ctx, storeID, in)
}

func (u *QuoteUseCase) Create(ctx context.Context, storeID string, in QuoteInput) (entities.Quote, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.Quote{}, ErrInvalidStoreID
	}

	breakdown, err := u.buildBreakdown(ctx, storeID, in)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	number, err := u.nextQuoteNumber(ctx, storeID, now)
	if err != nil {
		return entities.Quote{}, err
	}

	q := entities.Quote{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Number:    number,
		ClientID:  strings.TrimSpace(in.ClientID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	q.ApplyBreakdown(breakdown)

	return u.quotes.CreateWithItems(ctx, q)
}

func (u *QuoteUseCase) Update(ctx context.Context, storeID, id string, in QuoteUpdateInput) (entities.Quote, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.Quote{}, ErrInvalidStoreID
	}

	stored, err := u.ownedQuote(ctx, storeID, id)
	if err != nil {
		return entities.Quote{}, err
	}

	if in.ServiceName != nil {
		stored.ServiceName = strings.TrimSpace(*in.ServiceName)
	}
	if in.Description != nil {
		stored.Description = *in.Description
	}
	if in.ClientID != nil {
		stored.ClientID = strings.TrimSpace(*in.ClientID)
	}
	stored.UpdatedAt = time.Now().UTC()

	if !in.TouchesCosts() {
		if stored.ServiceName == "" {
			return entities.Quote{}, ErrInvalidQuoteInput
		}
		return u.quotes.SaveMetadata(ctx, stored)
	}

	breakdown, err := u.buildBreakdown(ctx, storeID, mergeUpdate(stored, in))
	if err != nil {
		return entities.Quote{}, err
	}
	stored.ApplyBreakdown(breakdown)

	return u.quotes.ReplaceWithItems(ctx, stored)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, storeID, id string) (entities.Quote, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.Quote{}, ErrInvalidStoreID
	}
	return u.ownedQuote(ctx, storeID, id)
}

func (u *QuoteUseCase) ListByStore(ctx context.Context, storeID string) ([]entities.Quote, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, ErrInvalidStoreID
	}
	return u.quotes.ListByStore(ctx, storeID)
}

func (u *QuoteUseCase) Remove(ctx context.Context, storeID, id string) error {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return ErrInvalidStoreID
	}
	q, err := u.ownedQuote(ctx, storeID, id)
	if err != nil {
		return err
	}
	return u.quotes.Delete(ctx, q)
}

// ownedQuote loads a quote and enforces tenant isolation: a quote belonging
// to another store is indistinguishable from a missing one.
func (u *QuoteUseCase) ownedQuote(ctx context.Context, storeID, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || q.StoreID != storeID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// buildBreakdown validates the request, resolves every referenced entity
// against the store's catalogs and runs the pricing pipeline. Fail-fast: no
// partial computation ever leaves this function.
func (u *QuoteUseCase) buildBreakdown(ctx context.Context, storeID string, in QuoteInput) (entities.CostBreakdown, error) {
	if err := validateQuoteInput(in); err != nil {
		return entities.CostBreakdown{}, err
	}

	settings, err := u.settings.GetByStoreID(ctx, storeID)
	if err != nil {
		return entities.CostBreakdown{}, err
	}
	if settings.StoreID == "" {
		return entities.CostBreakdown{}, ErrStoreNotFound
	}
	if !settings.ReadyForQuoting() {
		return entities.CostBreakdown{}, ErrSettingsIncomplete
	}

	materials, err := u.resolveMaterials(ctx, storeID, in.Materials)
	if err != nil {
		return entities.CostBreakdown{}, err
	}
	machines, err := u.resolveMachines(ctx, storeID, in.Machines)
	if err != nil {
		return entities.CostBreakdown{}, err
	}
	labor, err := u.resolveLabor(ctx, storeID, in.Labor)
	if err != nil {
		return entities.CostBreakdown{}, err
	}

	params := pricing.Params{
		LaborCostPerHour:       decimal.NewFromFloat(*settings.LaborCostPerHour),
		MachineCostPerHour:     decimal.NewFromFloat(settings.MachineCostPerHour),
		IndirectMonthlyCosts:   decimal.NewFromFloat(*settings.IndirectMonthlyCosts),
		DefaultMarginPercent:   decimal.NewFromFloat(settings.DefaultMarginPercent),
		DefaultTaxPercent:      decimal.NewFromFloat(settings.DefaultTaxPercent),
		MonthlyProductiveHours: settings.ProductiveHours(),
	}

	return pricing.Calculate(params, pricing.Input{
		ServiceName:           strings.TrimSpace(in.ServiceName),
		Description:           in.Description,
		ProductionHours:       decimal.NewFromFloat(in.ProductionHours),
		ProductQuantity:       in.ProductQuantity,
		Materials:             materials,
		Machines:              machines,
		Labor:                 labor,
		MarginOverridePercent: decimalPtr(in.MarginPercent),
		TaxOverridePercent:    decimalPtr(in.TaxPercent),
	}), nil
}

// resolveMaterials batch-resolves material references against the store's
// catalog. A resolved count smaller than the requested distinct count means
// a reference does not exist or belongs to another store; both cases are
// rejected identically (tenant-isolation guarantee).
func (u *QuoteUseCase) resolveMaterials(ctx context.Context, storeID string, lines []MaterialLineInput) ([]pricing.MaterialUsage, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := distinctIDs(len(lines), func(i int) string { return lines[i].MaterialID })
	found, err := u.materials.GetByIDs(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}
	if len(found) < len(ids) {
		return nil, ErrUnknownMaterial
	}

	byID := make(map[string]entities.Material, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}

	usages := make([]pricing.MaterialUsage, 0, len(lines))
	for _, line := range lines {
		m := byID[strings.TrimSpace(line.MaterialID)]
		usages = append(usages, pricing.MaterialUsage{
			MaterialID:    m.ID,
			Name:          m.Name,
			UnitOfMeasure: m.UnitOfMeasure,
			UnitCost:      decimal.NewFromFloat(m.UnitCost),
			Quantity:      decimal.NewFromFloat(line.Quantity),
		})
	}
	return usages, nil
}

// resolveMachines resolves machine lines for itemization. Lookups are
// key-scoped to the store, but an unresolved reference is dropped rather
// than rejected: machine lines are display-only and never feed the totals,
// which use the store-level machine rate.
func (u *QuoteUseCase) resolveMachines(ctx context.Context, storeID string, lines []MachineLineInput) ([]pricing.MachineUsage, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := distinctIDs(len(lines), func(i int) string { return lines[i].MachineID })
	found, err := u.machines.GetByIDs(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Machine, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}

	usages := make([]pricing.MachineUsage, 0, len(lines))
	for _, line := range lines {
		m, ok := byID[strings.TrimSpace(line.MachineID)]
		if !ok {
			continue
		}
		usages = append(usages, pricing.MachineUsage{
			MachineID:   m.ID,
			Name:        m.Name,
			Type:        m.Type,
			CostPerHour: decimal.NewFromFloat(m.CostPerHour),
			HoursUsed:   decimal.NewFromFloat(line.HoursUsed),
		})
	}
	return usages, nil
}

// resolveLabor mirrors resolveMachines for labor functions.
func (u *QuoteUseCase) resolveLabor(ctx context.Context, storeID string, lines []LaborLineInput) ([]pricing.LaborUsage, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := distinctIDs(len(lines), func(i int) string { return lines[i].RoleID })
	found, err := u.roles.GetByIDs(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Role, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	usages := make([]pricing.LaborUsage, 0, len(lines))
	for _, line := range lines {
		r, ok := byID[strings.TrimSpace(line.RoleID)]
		if !ok {
			continue
		}
		usages = append(usages, pricing.LaborUsage{
			RoleID:            r.ID,
			Name:              r.Name,
			LinkedMachineName: r.LinkedMachineName,
			CostPerHour:       decimal.NewFromFloat(r.CostPerHour),
			HoursWorked:       decimal.NewFromFloat(line.HoursWorked),
		})
	}
	return usages, nil
}

func validateQuoteInput(in QuoteInput) error {
	if strings.TrimSpace(in.ServiceName) == "" {
		return ErrInvalidQuoteInput
	}
	if in.ProductionHours <= 0 {
		return ErrInvalidQuoteInput
	}
	if in.ProductQuantity < 0 {
		return ErrInvalidQuoteInput
	}
	if (in.MarginPercent != nil && *in.MarginPercent < 0) || (in.TaxPercent != nil && *in.TaxPercent < 0) {
		return ErrInvalidQuoteInput
	}
	for _, m := range in.Materials {
		if strings.TrimSpace(m.MaterialID) == "" || m.Quantity <= 0 {
			return ErrInvalidQuoteInput
		}
	}
	for _, m := range in.Machines {
		if strings.TrimSpace(m.MachineID) == "" || m.HoursUsed <= 0 {
			return ErrInvalidQuoteInput
		}
	}
	for _, l := range in.Labor {
		if strings.TrimSpace(l.RoleID) == "" || l.HoursWorked <= 0 {
			return ErrInvalidQuoteInput
		}
	}
	return nil
}

// mergeUpdate overlays a cost-affecting patch on the stored quote to form
// the full recalculation request. Material lines not present in the patch
// are rebuilt from the persisted line items; machine/labor lines and
// margin/tax overrides are not persisted per quote, so an absent field falls
// back to "none" / store defaults.
func mergeUpdate(stored entities.Quote, in QuoteUpdateInput) QuoteInput {
	merged := QuoteInput{
		ServiceName:     stored.ServiceName,
		Description:     stored.Description,
		ClientID:        stored.ClientID,
		ProductionHours: stored.ProductionHours,
		ProductQuantity: stored.ProductQuantity,
		Machines:        in.Machines,
		Labor:           in.Labor,
		MarginPercent:   in.MarginPercent,
		TaxPercent:      in.TaxPercent,
	}
	if in.ProductionHours != nil {
		merged.ProductionHours = *in.ProductionHours
	}
	if in.ProductQuantity != nil {
		merged.ProductQuantity = *in.ProductQuantity
	}
	if in.Materials != nil {
		merged.Materials = in.Materials
	} else {
		lines := make([]MaterialLineInput, 0, len(stored.Items))
		for _, it := range stored.Items {
			lines = append(lines, MaterialLineInput{MaterialID: it.MaterialID, Quantity: it.Quantity})
		}
		merged.Materials = lines
	}
	return merged
}

func distinctIDs(n int, at func(i int) string) []string {
	seen := make(map[string]struct{}, n)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := strings.TrimSpace(at(i))
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func decimalPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
