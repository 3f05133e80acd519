package memory_test

import (
	"context"
	"testing"

	"labcore/internal/catalog/memory"
	"labcore/pkg/domain"
)

func TestStoreIsolatesCallers(t *testing.T) {
	seed := domain.Laboratory{
		Base: domain.Base{ID: "lab-a"},
		Members: []domain.LabMember{
			{Base: domain.Base{ID: "m-1"}, Name: "Ana", Role: domain.RoleStaff},
		},
	}
	store := memory.NewStore(seed)

	// mutating the seed after construction must not affect the store
	seed.Members[0].Name = "changed"
	labs, err := store.Laboratories(context.Background())
	if err != nil {
		t.Fatalf("laboratories: %v", err)
	}
	if labs[0].Members[0].Name != "Ana" {
		t.Fatal("store shares memory with the seed slice")
	}

	// mutating a read result must not affect subsequent reads
	labs[0].Members[0].Role = domain.RoleTop
	again, err := store.Laboratories(context.Background())
	if err != nil {
		t.Fatalf("laboratories: %v", err)
	}
	if again[0].Members[0].Role != domain.RoleStaff {
		t.Fatal("store shares memory with read results")
	}
}

func TestSeedLaboratoriesShape(t *testing.T) {
	labs := memory.SeedLaboratories()
	if len(labs) != 2 {
		t.Fatalf("seed has %d laboratories", len(labs))
	}
	elec, chem := labs[0], labs[1]
	if elec.ID != "lab-electronics" || chem.ID != "lab-chemistry" {
		t.Fatalf("seed ids: %q, %q", elec.ID, chem.ID)
	}
	if _, ok := elec.Member("mem-elec-aux"); !ok {
		t.Fatal("electronics seed is missing its assistant")
	}
	if len(chem.LoanReports) != 1 || chem.LoanReports[0].Status != domain.LoanOpen {
		t.Fatalf("chemistry loan reports: %+v", chem.LoanReports)
	}
}
