package repository_test

import (
	"context"
	"testing"

	"github.com/vendalog/erp/internal/adapters/postgres/repository"
	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

func TestCustomerRepository_Create(t *testing.T) {
	repo := repository.NewCustomerRepository(testPool)
	ctx := context.Background()

	t.Run("creates customer and assigns ID", func(t *testing.T) {
		customer := domain.NewCustomer("Jane Doe", uniqueEmail("create"), nil)

		err := repo.Create(ctx, customer)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !customer.ID.Valid() {
			t.Fatal("expected customer ID to be assigned")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		email := uniqueEmail("dup")
		first := domain.NewCustomer("First", email, nil)
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("setup: create failed: %v", err)
		}

		second := domain.NewCustomer("Second", email, nil)
		err := repo.Create(ctx, second)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if serviceerrors.CodeOf(err) != serviceerrors.CodeDuplicateResource {
			t.Fatalf("expected code %s, got %v", serviceerrors.CodeDuplicateResource, err)
		}
	})

	t.Run("rejects duplicate document", func(t *testing.T) {
		document := "93847562011"
		first := domain.NewCustomer("First", uniqueEmail("doc1"), &document)
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("setup: create failed: %v", err)
		}

		second := domain.NewCustomer("Second", uniqueEmail("doc2"), &document)
		err := repo.Create(ctx, second)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if serviceerrors.CodeOf(err) != serviceerrors.CodeDuplicateResource {
			t.Fatalf("expected code %s, got %v", serviceerrors.CodeDuplicateResource, err)
		}
	})

	t.Run("allows multiple customers without document", func(t *testing.T) {
		first := domain.NewCustomer("NoDoc One", uniqueEmail("nodoc1"), nil)
		second := domain.NewCustomer("NoDoc Two", uniqueEmail("nodoc2"), nil)

		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestCustomerRepository_GetByID(t *testing.T) {
	repo := repository.NewCustomerRepository(testPool)
	ctx := context.Background()

	t.Run("returns customer by ID", func(t *testing.T) {
		created := createTestCustomer(t)

		found, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found.ID != created.ID {
			t.Fatalf("expected id %d, got %d", created.ID, found.ID)
		}
		if found.Email != created.Email {
			t.Fatalf("expected email %q, got %q", created.Email, found.Email)
		}
	})

	t.Run("returns not found for non-existing ID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestCustomerRepository_Exists(t *testing.T) {
	repo := repository.NewCustomerRepository(testPool)
	ctx := context.Background()

	t.Run("returns true for existing customer", func(t *testing.T) {
		created := createTestCustomer(t)

		exists, err := repo.Exists(ctx, created.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !exists {
			t.Fatal("expected customer to exist")
		}
	})

	t.Run("returns false for non-existing customer", func(t *testing.T) {
		exists, err := repo.Exists(ctx, 999999)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if exists {
			t.Fatal("expected customer to not exist")
		}
	})
}

func TestCustomerRepository_List(t *testing.T) {
	repo := repository.NewCustomerRepository(testPool)
	ctx := context.Background()

	t.Run("returns customers with total count", func(t *testing.T) {
		createTestCustomer(t)
		createTestCustomer(t)

		customers, total, err := repo.List(ctx, 100, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total < 2 {
			t.Fatalf("expected total >= 2, got %d", total)
		}
		if len(customers) < 2 {
			t.Fatalf("expected at least 2 customers, got %d", len(customers))
		}
	})
}
