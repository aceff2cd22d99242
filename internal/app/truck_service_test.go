package app

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestCreateTruck(t *testing.T) {
	svc := NewTruckService(newMockTruckRepo(), zap.NewNop())
	ctx := context.Background()

	truck, err := svc.CreateTruck(ctx, "  Truck F1  ")
	if err != nil {
		t.Fatalf("CreateTruck failed: %v", err)
	}
	if truck.Name != "Truck F1" {
		t.Errorf("Name = %q, want trimmed %q", truck.Name, "Truck F1")
	}
	if truck.ID == 0 {
		t.Error("ID not assigned")
	}
}

func TestCreateTruck_EmptyName(t *testing.T) {
	svc := NewTruckService(newMockTruckRepo(), zap.NewNop())

	if _, err := svc.CreateTruck(context.Background(), "   "); err == nil {
		t.Error("CreateTruck accepted a blank name")
	}
}

func TestGetTruck_Missing(t *testing.T) {
	svc := NewTruckService(newMockTruckRepo(), zap.NewNop())

	truck, err := svc.GetTruck(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetTruck failed: %v", err)
	}
	if truck != nil {
		t.Errorf("GetTruck = %+v, want nil for missing truck", truck)
	}
}

func TestRenameTruck(t *testing.T) {
	repo := newMockTruckRepo()
	svc := NewTruckService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateTruck(ctx, "Old")
	if err != nil {
		t.Fatalf("CreateTruck failed: %v", err)
	}

	if err := svc.RenameTruck(ctx, created.ID, "New"); err != nil {
		t.Fatalf("RenameTruck failed: %v", err)
	}

	truck, _ := svc.GetTruck(ctx, created.ID)
	if truck.Name != "New" {
		t.Errorf("Name = %q, want New", truck.Name)
	}
}

func TestRenameTruck_EmptyName(t *testing.T) {
	svc := NewTruckService(newMockTruckRepo(), zap.NewNop())

	if err := svc.RenameTruck(context.Background(), 1, ""); err == nil {
		t.Error("RenameTruck accepted a blank name")
	}
}
