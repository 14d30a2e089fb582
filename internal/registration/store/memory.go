package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"farmgate/internal/registration/models"
	"farmgate/pkg/platform/sentinel"
)

// InMemoryStores keeps the whole registration dataset in guarded maps.
// It favors clarity over performance and exists for tests and for running
// the server without a database.
//
// RunInTx serializes transactions and snapshots every map before running
// fn, restoring the snapshot on error. Writes always replace whole values,
// so a shallow map copy is a sufficient snapshot.
type InMemoryStores struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	farmers     map[uuid.UUID]*models.Farmer
	operators   map[uuid.UUID]*models.Operator
	roles       map[string]*models.Role
	plots       map[uuid.UUID]*models.Plot
	farms       map[uuid.UUID]*models.Farm
	irrigations map[uuid.UUID]*models.FarmIrrigation

	soilTypes       map[int64]*models.SoilType
	irrigationTypes map[int64]*models.IrrigationType
	plantationTypes map[int64]*models.PlantationType
	plantingMethods map[int64]*models.PlantingMethod
	cropTypes       map[int64]*models.CropType

	nextID int64
}

func NewInMemoryStores() *InMemoryStores {
	return &InMemoryStores{
		farmers:         make(map[uuid.UUID]*models.Farmer),
		operators:       make(map[uuid.UUID]*models.Operator),
		roles:           make(map[string]*models.Role),
		plots:           make(map[uuid.UUID]*models.Plot),
		farms:           make(map[uuid.UUID]*models.Farm),
		irrigations:     make(map[uuid.UUID]*models.FarmIrrigation),
		soilTypes:       make(map[int64]*models.SoilType),
		irrigationTypes: make(map[int64]*models.IrrigationType),
		plantationTypes: make(map[int64]*models.PlantationType),
		plantingMethods: make(map[int64]*models.PlantingMethod),
		cropTypes:       make(map[int64]*models.CropType),
		nextID:          1,
	}
}

// Bundle wires the single in-memory instance into every store slot via
// thin adapter views that satisfy the per-entity interfaces.
func (m *InMemoryStores) Bundle() *Stores {
	return &Stores{
		Tx:              m,
		Farmers:         memFarmers{m},
		Operators:       memOperators{m},
		Roles:           memRoles{m},
		Plots:           memPlots{m},
		Farms:           memFarms{m},
		Irrigations:     memIrrigations{m},
		SoilTypes:       memSoilTypes{m},
		IrrigationTypes: memIrrigationTypes{m},
		PlantationTypes: memPlantationTypes{m},
		PlantingMethods: memPlantingMethods{m},
		CropTypes:       memCropTypes{m},
	}
}

type memorySnapshot struct {
	farmers         map[uuid.UUID]*models.Farmer
	operators       map[uuid.UUID]*models.Operator
	roles           map[string]*models.Role
	plots           map[uuid.UUID]*models.Plot
	farms           map[uuid.UUID]*models.Farm
	irrigations     map[uuid.UUID]*models.FarmIrrigation
	soilTypes       map[int64]*models.SoilType
	irrigationTypes map[int64]*models.IrrigationType
	plantationTypes map[int64]*models.PlantationType
	plantingMethods map[int64]*models.PlantingMethod
	cropTypes       map[int64]*models.CropType
	nextID          int64
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (m *InMemoryStores) snapshot() memorySnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return memorySnapshot{
		farmers:         copyMap(m.farmers),
		operators:       copyMap(m.operators),
		roles:           copyMap(m.roles),
		plots:           copyMap(m.plots),
		farms:           copyMap(m.farms),
		irrigations:     copyMap(m.irrigations),
		soilTypes:       copyMap(m.soilTypes),
		irrigationTypes: copyMap(m.irrigationTypes),
		plantationTypes: copyMap(m.plantationTypes),
		plantingMethods: copyMap(m.plantingMethods),
		cropTypes:       copyMap(m.cropTypes),
		nextID:          m.nextID,
	}
}

func (m *InMemoryStores) restore(snap memorySnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.farmers = snap.farmers
	m.operators = snap.operators
	m.roles = snap.roles
	m.plots = snap.plots
	m.farms = snap.farms
	m.irrigations = snap.irrigations
	m.soilTypes = snap.soilTypes
	m.irrigationTypes = snap.irrigationTypes
	m.plantationTypes = snap.plantationTypes
	m.plantingMethods = snap.plantingMethods
	m.cropTypes = snap.cropTypes
	m.nextID = snap.nextID
}

func (m *InMemoryStores) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	snap := m.snapshot()
	if err := fn(ctx); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *InMemoryStores) allocID() int64 {
	id := m.nextID
	m.nextID++
	return id
}

// --- farmers ---

func (m *InMemoryStores) CreateFarmer(ctx context.Context, farmer *models.Farmer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.farmers {
		if f.Username == farmer.Username || (farmer.Email != "" && f.Email == farmer.Email) {
			return sentinel.ErrConflict
		}
		if farmer.Phone != "" && f.Phone == farmer.Phone {
			return sentinel.ErrConflict
		}
	}
	m.farmers[farmer.ID] = farmer
	return nil
}

func (m *InMemoryStores) GetFarmerByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.farmers[id]; ok {
		return f, nil
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) GetFarmerByUsername(ctx context.Context, username string) (*models.Farmer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, f := range m.farmers {
		if f.Username == username {
			return f, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) GetFarmerByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, f := range m.farmers {
		if f.Email == email {
			return f, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) GetFarmerByPhone(ctx context.Context, phone string) (*models.Farmer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, f := range m.farmers {
		if f.Phone == phone {
			return f, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// --- operators ---

func (m *InMemoryStores) SeedOperator(op *models.Operator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operators[op.ID] = op
}

func (m *InMemoryStores) GetOperatorByID(ctx context.Context, id uuid.UUID) (*models.Operator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if op, ok := m.operators[id]; ok {
		return op, nil
	}
	return nil, sentinel.ErrNotFound
}

// --- roles ---

func (m *InMemoryStores) SeedRole(role *models.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[role.Name] = role
}

func (m *InMemoryStores) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.roles[name]; ok {
		return r, nil
	}
	return nil, sentinel.ErrNotFound
}

// --- plots ---

func (m *InMemoryStores) CreatePlot(ctx context.Context, plot *models.Plot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := plot.Key()
	for _, p := range m.plots {
		if p.Key() == key {
			return sentinel.ErrConflict
		}
	}
	m.plots[plot.ID] = plot
	return nil
}

func (m *InMemoryStores) FindPlotByKey(ctx context.Context, key models.PlotKey) (*models.Plot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.plots {
		if p.Key() == key {
			return p, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) ListPlotsByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*models.Plot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Plot
	for _, p := range m.plots {
		if p.FarmerID == farmerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- farms ---

func (m *InMemoryStores) CreateFarm(ctx context.Context, farm *models.Farm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.farms[farm.ID] = farm
	return nil
}

func (m *InMemoryStores) GetFarmByID(ctx context.Context, id uuid.UUID) (*models.Farm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.farms[id]; ok {
		return f, nil
	}
	return nil, sentinel.ErrNotFound
}

// --- irrigations ---

func (m *InMemoryStores) CreateIrrigation(ctx context.Context, irrigation *models.FarmIrrigation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.irrigations[irrigation.ID] = irrigation
	return nil
}

func (m *InMemoryStores) GetIrrigationByFarmID(ctx context.Context, farmID uuid.UUID) (*models.FarmIrrigation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ir := range m.irrigations {
		if ir.FarmID == farmID {
			return ir, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// --- soil types ---

func (m *InMemoryStores) GetSoilTypeByID(ctx context.Context, id int64) (*models.SoilType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if st, ok := m.soilTypes[id]; ok {
		return st, nil
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) FindSoilTypeByName(ctx context.Context, name string) (*models.SoilType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, st := range m.soilTypes {
		if strings.EqualFold(st.Name, name) {
			return st, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) CreateSoilType(ctx context.Context, st *models.SoilType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.soilTypes {
		if strings.EqualFold(existing.Name, st.Name) {
			return sentinel.ErrConflict
		}
	}
	st.ID = m.allocID()
	m.soilTypes[st.ID] = st
	return nil
}

// --- irrigation types ---

func (m *InMemoryStores) GetIrrigationTypeByID(ctx context.Context, id int64) (*models.IrrigationType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if it, ok := m.irrigationTypes[id]; ok {
		return it, nil
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) FindIrrigationTypeByName(ctx context.Context, name string) (*models.IrrigationType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, it := range m.irrigationTypes {
		if strings.EqualFold(it.Name, name) {
			return it, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) CreateIrrigationType(ctx context.Context, it *models.IrrigationType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.irrigationTypes {
		if strings.EqualFold(existing.Name, it.Name) {
			return sentinel.ErrConflict
		}
	}
	it.ID = m.allocID()
	m.irrigationTypes[it.ID] = it
	return nil
}

// --- plantation types ---

func (m *InMemoryStores) GetPlantationTypeByID(ctx context.Context, id int64) (*models.PlantationType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if pt, ok := m.plantationTypes[id]; ok {
		return pt, nil
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) findPlantationType(match func(*models.PlantationType) bool) (*models.PlantationType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, pt := range m.plantationTypes {
		if pt.IsActive && match(pt) {
			return pt, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) FindPlantationTypeByCode(ctx context.Context, industryID int64, code string) (*models.PlantationType, error) {
	return m.findPlantationType(func(pt *models.PlantationType) bool {
		return pt.IndustryID != nil && *pt.IndustryID == industryID && strings.EqualFold(pt.Code, code)
	})
}

func (m *InMemoryStores) FindPlantationTypeByName(ctx context.Context, industryID int64, name string) (*models.PlantationType, error) {
	return m.findPlantationType(func(pt *models.PlantationType) bool {
		return pt.IndustryID != nil && *pt.IndustryID == industryID && strings.EqualFold(pt.Name, name)
	})
}

func (m *InMemoryStores) FindPlantationTypeByCodeAny(ctx context.Context, code string) (*models.PlantationType, error) {
	return m.findPlantationType(func(pt *models.PlantationType) bool {
		return strings.EqualFold(pt.Code, code)
	})
}

func (m *InMemoryStores) FindPlantationTypeByNameAny(ctx context.Context, name string) (*models.PlantationType, error) {
	return m.findPlantationType(func(pt *models.PlantationType) bool {
		return strings.EqualFold(pt.Name, name)
	})
}

func (m *InMemoryStores) CreatePlantationType(ctx context.Context, pt *models.PlantationType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.plantationTypes {
		if int64PtrEq(existing.IndustryID, pt.IndustryID) && strings.EqualFold(existing.Code, pt.Code) {
			return sentinel.ErrConflict
		}
	}
	pt.ID = m.allocID()
	m.plantationTypes[pt.ID] = pt
	return nil
}

// --- planting methods ---

func (m *InMemoryStores) GetPlantingMethodByID(ctx context.Context, id int64) (*models.PlantingMethod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if pm, ok := m.plantingMethods[id]; ok {
		return pm, nil
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) findPlantingMethod(match func(*models.PlantingMethod) bool) (*models.PlantingMethod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, pm := range m.plantingMethods {
		if pm.IsActive && match(pm) {
			return pm, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) FindPlantingMethodByCode(ctx context.Context, industryID int64, code string) (*models.PlantingMethod, error) {
	return m.findPlantingMethod(func(pm *models.PlantingMethod) bool {
		return pm.IndustryID != nil && *pm.IndustryID == industryID && strings.EqualFold(pm.Code, code)
	})
}

func (m *InMemoryStores) FindPlantingMethodByName(ctx context.Context, industryID int64, name string) (*models.PlantingMethod, error) {
	return m.findPlantingMethod(func(pm *models.PlantingMethod) bool {
		return pm.IndustryID != nil && *pm.IndustryID == industryID && strings.EqualFold(pm.Name, name)
	})
}

func (m *InMemoryStores) FindPlantingMethodByCodeAny(ctx context.Context, code string) (*models.PlantingMethod, error) {
	return m.findPlantingMethod(func(pm *models.PlantingMethod) bool {
		return strings.EqualFold(pm.Code, code)
	})
}

func (m *InMemoryStores) FindPlantingMethodByNameAny(ctx context.Context, name string) (*models.PlantingMethod, error) {
	return m.findPlantingMethod(func(pm *models.PlantingMethod) bool {
		return strings.EqualFold(pm.Name, name)
	})
}

func (m *InMemoryStores) CreatePlantingMethod(ctx context.Context, pm *models.PlantingMethod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.plantingMethods {
		if int64PtrEq(existing.PlantationTypeID, pm.PlantationTypeID) &&
			int64PtrEq(existing.IndustryID, pm.IndustryID) &&
			strings.EqualFold(existing.Code, pm.Code) {
			return sentinel.ErrConflict
		}
	}
	pm.ID = m.allocID()
	m.plantingMethods[pm.ID] = pm
	return nil
}

// --- crop types ---

func (m *InMemoryStores) GetCropTypeByID(ctx context.Context, id int64) (*models.CropType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if ct, ok := m.cropTypes[id]; ok {
		return ct, nil
	}
	return nil, sentinel.ErrNotFound
}

func int64PtrEq(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (m *InMemoryStores) FindCropTypeByIdentity(ctx context.Context, name string, plantationTypeID, plantingMethodID *int64) (*models.CropType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ct := range m.cropTypes {
		if strings.EqualFold(ct.Name, name) &&
			int64PtrEq(ct.PlantationTypeID, plantationTypeID) &&
			int64PtrEq(ct.PlantingMethodID, plantingMethodID) {
			return ct, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) FindCropTypeByName(ctx context.Context, name string) (*models.CropType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ct := range m.cropTypes {
		if strings.EqualFold(ct.Name, name) {
			return ct, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (m *InMemoryStores) CreateCropType(ctx context.Context, ct *models.CropType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.cropTypes {
		if strings.EqualFold(existing.Name, ct.Name) &&
			int64PtrEq(existing.PlantationTypeID, ct.PlantationTypeID) &&
			int64PtrEq(existing.PlantingMethodID, ct.PlantingMethodID) {
			return sentinel.ErrConflict
		}
	}
	ct.ID = m.allocID()
	m.cropTypes[ct.ID] = ct
	return nil
}

func (m *InMemoryStores) UpdateCropType(ctx context.Context, ct *models.CropType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cropTypes[ct.ID]; !ok {
		return sentinel.ErrNotFound
	}
	m.cropTypes[ct.ID] = ct
	return nil
}

// --- interface adapters ---

type memFarmers struct{ m *InMemoryStores }

func (v memFarmers) Create(ctx context.Context, f *models.Farmer) error {
	return v.m.CreateFarmer(ctx, f)
}
func (v memFarmers) GetByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	return v.m.GetFarmerByID(ctx, id)
}
func (v memFarmers) GetByUsername(ctx context.Context, username string) (*models.Farmer, error) {
	return v.m.GetFarmerByUsername(ctx, username)
}
func (v memFarmers) GetByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	return v.m.GetFarmerByEmail(ctx, email)
}
func (v memFarmers) GetByPhone(ctx context.Context, phone string) (*models.Farmer, error) {
	return v.m.GetFarmerByPhone(ctx, phone)
}

type memOperators struct{ m *InMemoryStores }

func (v memOperators) GetByID(ctx context.Context, id uuid.UUID) (*models.Operator, error) {
	return v.m.GetOperatorByID(ctx, id)
}

type memRoles struct{ m *InMemoryStores }

func (v memRoles) GetByName(ctx context.Context, name string) (*models.Role, error) {
	return v.m.GetRoleByName(ctx, name)
}

type memPlots struct{ m *InMemoryStores }

func (v memPlots) Create(ctx context.Context, p *models.Plot) error {
	return v.m.CreatePlot(ctx, p)
}
func (v memPlots) FindByKey(ctx context.Context, key models.PlotKey) (*models.Plot, error) {
	return v.m.FindPlotByKey(ctx, key)
}
func (v memPlots) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*models.Plot, error) {
	return v.m.ListPlotsByFarmer(ctx, farmerID)
}

type memFarms struct{ m *InMemoryStores }

func (v memFarms) Create(ctx context.Context, f *models.Farm) error {
	return v.m.CreateFarm(ctx, f)
}
func (v memFarms) GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error) {
	return v.m.GetFarmByID(ctx, id)
}

type memIrrigations struct{ m *InMemoryStores }

func (v memIrrigations) Create(ctx context.Context, ir *models.FarmIrrigation) error {
	return v.m.CreateIrrigation(ctx, ir)
}
func (v memIrrigations) GetByFarmID(ctx context.Context, farmID uuid.UUID) (*models.FarmIrrigation, error) {
	return v.m.GetIrrigationByFarmID(ctx, farmID)
}

type memSoilTypes struct{ m *InMemoryStores }

func (v memSoilTypes) GetByID(ctx context.Context, id int64) (*models.SoilType, error) {
	return v.m.GetSoilTypeByID(ctx, id)
}
func (v memSoilTypes) FindByName(ctx context.Context, name string) (*models.SoilType, error) {
	return v.m.FindSoilTypeByName(ctx, name)
}
func (v memSoilTypes) Create(ctx context.Context, st *models.SoilType) error {
	return v.m.CreateSoilType(ctx, st)
}

type memIrrigationTypes struct{ m *InMemoryStores }

func (v memIrrigationTypes) GetByID(ctx context.Context, id int64) (*models.IrrigationType, error) {
	return v.m.GetIrrigationTypeByID(ctx, id)
}
func (v memIrrigationTypes) FindByName(ctx context.Context, name string) (*models.IrrigationType, error) {
	return v.m.FindIrrigationTypeByName(ctx, name)
}
func (v memIrrigationTypes) Create(ctx context.Context, it *models.IrrigationType) error {
	return v.m.CreateIrrigationType(ctx, it)
}

type memPlantationTypes struct{ m *InMemoryStores }

func (v memPlantationTypes) GetByID(ctx context.Context, id int64) (*models.PlantationType, error) {
	return v.m.GetPlantationTypeByID(ctx, id)
}
func (v memPlantationTypes) FindByCode(ctx context.Context, industryID int64, code string) (*models.PlantationType, error) {
	return v.m.FindPlantationTypeByCode(ctx, industryID, code)
}
func (v memPlantationTypes) FindByName(ctx context.Context, industryID int64, name string) (*models.PlantationType, error) {
	return v.m.FindPlantationTypeByName(ctx, industryID, name)
}
func (v memPlantationTypes) FindByCodeAny(ctx context.Context, code string) (*models.PlantationType, error) {
	return v.m.FindPlantationTypeByCodeAny(ctx, code)
}
func (v memPlantationTypes) FindByNameAny(ctx context.Context, name string) (*models.PlantationType, error) {
	return v.m.FindPlantationTypeByNameAny(ctx, name)
}
func (v memPlantationTypes) Create(ctx context.Context, pt *models.PlantationType) error {
	return v.m.CreatePlantationType(ctx, pt)
}

type memPlantingMethods struct{ m *InMemoryStores }

func (v memPlantingMethods) GetByID(ctx context.Context, id int64) (*models.PlantingMethod, error) {
	return v.m.GetPlantingMethodByID(ctx, id)
}
func (v memPlantingMethods) FindByCode(ctx context.Context, industryID int64, code string) (*models.PlantingMethod, error) {
	return v.m.FindPlantingMethodByCode(ctx, industryID, code)
}
func (v memPlantingMethods) FindByName(ctx context.Context, industryID int64, name string) (*models.PlantingMethod, error) {
	return v.m.FindPlantingMethodByName(ctx, industryID, name)
}
func (v memPlantingMethods) FindByCodeAny(ctx context.Context, code string) (*models.PlantingMethod, error) {
	return v.m.FindPlantingMethodByCodeAny(ctx, code)
}
func (v memPlantingMethods) FindByNameAny(ctx context.Context, name string) (*models.PlantingMethod, error) {
	return v.m.FindPlantingMethodByNameAny(ctx, name)
}
func (v memPlantingMethods) Create(ctx context.Context, pm *models.PlantingMethod) error {
	return v.m.CreatePlantingMethod(ctx, pm)
}

type memCropTypes struct{ m *InMemoryStores }

func (v memCropTypes) GetByID(ctx context.Context, id int64) (*models.CropType, error) {
	return v.m.GetCropTypeByID(ctx, id)
}
func (v memCropTypes) FindByIdentity(ctx context.Context, name string, plantationTypeID, plantingMethodID *int64) (*models.CropType, error) {
	return v.m.FindCropTypeByIdentity(ctx, name, plantationTypeID, plantingMethodID)
}
func (v memCropTypes) FindByName(ctx context.Context, name string) (*models.CropType, error) {
	return v.m.FindCropTypeByName(ctx, name)
}
func (v memCropTypes) Create(ctx context.Context, ct *models.CropType) error {
	return v.m.CreateCropType(ctx, ct)
}
func (v memCropTypes) Update(ctx context.Context, ct *models.CropType) error {
	return v.m.UpdateCropType(ctx, ct)
}
