package puja_test

import (
	"context"
	"errors"
	"testing"

	"devmitra/models"
	"devmitra/services/puja"
	"devmitra/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakePujaRepo struct {
	pujas map[string]*models.PujaType
}

func newFakePujaRepo() *fakePujaRepo {
	return &fakePujaRepo{pujas: make(map[string]*models.PujaType)}
}

func (f *fakePujaRepo) Create(p *models.PujaType) error {
	cp := *p
	f.pujas[p.ID] = &cp
	return nil
}

func (f *fakePujaRepo) GetByID(id string) (*models.PujaType, error) {
	p, ok := f.pujas[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePujaRepo) ListActive() ([]models.PujaType, error) {
	var out []models.PujaType
	for _, p := range f.pujas {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePujaRepo) UpdateSetDocument(id string, doc bson.M) (*models.PujaType, error) {
	p, ok := f.pujas[id]
	if !ok {
		return nil, nil
	}
	for k, v := range doc {
		switch k {
		case "name":
			p.Name = v.(string)
		case "basePrice":
			p.BasePrice = v.(float64)
		case "isActive":
			p.IsActive = v.(bool)
		}
	}
	cp := *p
	return &cp, nil
}

type fakeVendorPujaRepo struct {
	mappings []models.VendorPuja
}

func (f *fakeVendorPujaRepo) Create(m *models.VendorPuja) error {
	f.mappings = append(f.mappings, *m)
	return nil
}

func (f *fakeVendorPujaRepo) ListByVendor(vendorID string) ([]models.VendorPuja, error) {
	var out []models.VendorPuja
	for _, m := range f.mappings {
		if m.Vendor == vendorID {
			out = append(out, m)
		}
	}
	return out, nil
}

func newPujaService(repo *fakePujaRepo, vp *fakeVendorPujaRepo) *puja.DefaultPujaService {
	return &puja.DefaultPujaService{
		Repo:        repo,
		VendorPujas: vp,
		Logger:      zap.NewNop(),
	}
}

func validPujaInput() puja.CreatePujaInput {
	return puja.CreatePujaInput{
		Name:        "Griha Pravesh",
		Description: "Housewarming ceremony",
		BasePrice:   2100,
		Image:       "https://example.com/gp.jpg",
	}
}

func TestCreatePujaDefaults(t *testing.T) {
	svc := newPujaService(newFakePujaRepo(), &fakeVendorPujaRepo{})

	created, err := svc.CreatePuja(context.Background(), validPujaInput())
	if err != nil {
		t.Fatalf("CreatePuja failed: %v", err)
	}
	if !created.IsActive {
		t.Error("a new puja must start active")
	}
	if created.DurationMinutes != 120 {
		t.Errorf("durationMinutes = %d, want the 120 default", created.DurationMinutes)
	}
}

func TestCreatePujaValidation(t *testing.T) {
	svc := newPujaService(newFakePujaRepo(), &fakeVendorPujaRepo{})

	in := validPujaInput()
	in.BasePrice = 0
	_, err := svc.CreatePuja(context.Background(), in)
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeactivatePujaIsSoftDelete(t *testing.T) {
	repo := newFakePujaRepo()
	repo.pujas["p1"] = &models.PujaType{ID: "p1", Name: "Satyanarayan", IsActive: true}
	svc := newPujaService(repo, &fakeVendorPujaRepo{})
	ctx := context.Background()

	if err := svc.DeactivatePuja(ctx, "p1"); err != nil {
		t.Fatalf("DeactivatePuja failed: %v", err)
	}

	// The document survives, it just drops out of the active listing.
	if repo.pujas["p1"] == nil {
		t.Fatal("the document must not be physically removed")
	}
	if repo.pujas["p1"].IsActive {
		t.Error("expected isActive=false after deactivation")
	}

	active, err := svc.ListActivePujas(ctx)
	if err != nil {
		t.Fatalf("ListActivePujas failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("got %d active pujas, want 0", len(active))
	}
}

func TestDeactivatePujaUnknown(t *testing.T) {
	svc := newPujaService(newFakePujaRepo(), &fakeVendorPujaRepo{})

	err := svc.DeactivatePuja(context.Background(), "missing")
	var nf *utils.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetVendorPujasHydratesCatalog(t *testing.T) {
	repo := newFakePujaRepo()
	repo.pujas["p1"] = &models.PujaType{ID: "p1", Name: "Satyanarayan", IsActive: true}
	vp := &fakeVendorPujaRepo{}
	svc := newPujaService(repo, vp)
	ctx := context.Background()

	if _, err := svc.AssignPujaToVendor(ctx, "vendor-1", "p1"); err != nil {
		t.Fatalf("AssignPujaToVendor failed: %v", err)
	}

	views, err := svc.GetVendorPujas(ctx, "vendor-1")
	if err != nil {
		t.Fatalf("GetVendorPujas failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d views, want 1", len(views))
	}
	if views[0].PujaDetails == nil || views[0].PujaDetails.Name != "Satyanarayan" {
		t.Error("expected the catalog entry to be attached to the mapping")
	}
}
