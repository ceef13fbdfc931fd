//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := "host=" + host + " port=" + port.Port() + " user=testuser password=testpass dbname=testdb sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db))

	return db
}

func springfield() *entity.Address {
	return &entity.Address{
		AddressFields: entity.AddressFields{
			Street: "Main St", City: "Springfield", State: "IL", Country: "US",
			Latitude: 39.78, Longitude: -89.65,
		},
	}
}

func TestAddressRepository_Integration(t *testing.T) {
	db := setupTestDatabase(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	t.Run("create assigns id and preserves fields", func(t *testing.T) {
		address := springfield()
		require.NoError(t, repo.CreateAddress(ctx, address))
		assert.NotZero(t, address.ID)

		found, err := repo.FindAddressByID(ctx, address.ID)
		require.NoError(t, err)
		assert.Equal(t, address, found)
	})

	t.Run("update replaces every field", func(t *testing.T) {
		address := springfield()
		require.NoError(t, repo.CreateAddress(ctx, address))

		address.Replace(entity.AddressFields{
			Street: "", City: "Null Island", State: "", Country: "",
			Latitude: 0, Longitude: 0,
		})
		require.NoError(t, repo.UpdateAddress(ctx, address))

		found, err := repo.FindAddressByID(ctx, address.ID)
		require.NoError(t, err)
		assert.Equal(t, address.AddressFields, found.AddressFields)

		// Writing identical values is still a successful update.
		require.NoError(t, repo.UpdateAddress(ctx, address))
	})

	t.Run("update and delete of missing id", func(t *testing.T) {
		missing := springfield()
		missing.ID = 987654

		assert.True(t, errors.Is(repo.UpdateAddress(ctx, missing), repository.ErrAddressNotFound))
		assert.True(t, errors.Is(repo.DeleteAddress(ctx, missing.ID), repository.ErrAddressNotFound))

		_, err := repo.FindAddressByID(ctx, missing.ID)
		assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
	})

	t.Run("delete removes the row", func(t *testing.T) {
		address := springfield()
		require.NoError(t, repo.CreateAddress(ctx, address))

		require.NoError(t, repo.DeleteAddress(ctx, address.ID))

		_, err := repo.FindAddressByID(ctx, address.ID)
		assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
	})

	t.Run("list returns every row in id order", func(t *testing.T) {
		require.NoError(t, db.Exec("TRUNCATE addresses RESTART IDENTITY").Error)

		created := make([]int64, 0, 3)
		for range 3 {
			address := springfield()
			require.NoError(t, repo.CreateAddress(ctx, address))
			created = append(created, address.ID)
		}

		addresses, err := repo.ListAddresses(ctx)
		require.NoError(t, err)
		require.Len(t, addresses, 3)
		for i, address := range addresses {
			assert.Equal(t, created[i], address.ID)
		}
	})
}

func TestTransactionManager_Integration(t *testing.T) {
	db := setupTestDatabase(t)
	tm := NewTransactionManager(db)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	t.Run("error rolls back", func(t *testing.T) {
		errAbort := errors.New("abort")
		var createdID int64

		err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			address := springfield()
			if err := factory.NewAddressRepository().CreateAddress(ctx, address); err != nil {
				return err
			}
			createdID = address.ID

			return errAbort
		})
		require.ErrorIs(t, err, errAbort)
		require.NotZero(t, createdID)

		_, err = repo.FindAddressByID(ctx, createdID)
		assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
	})

	t.Run("panic rolls back and re-panics", func(t *testing.T) {
		var createdID int64

		assert.Panics(t, func() {
			_ = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
				address := springfield()
				_ = factory.NewAddressRepository().CreateAddress(ctx, address)
				createdID = address.ID
				panic("boom")
			})
		})

		_, err := repo.FindAddressByID(ctx, createdID)
		assert.True(t, errors.Is(err, repository.ErrAddressNotFound))
	})

	t.Run("success commits", func(t *testing.T) {
		address := springfield()
		err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewAddressRepository().CreateAddress(ctx, address)
		})
		require.NoError(t, err)

		found, err := repo.FindAddressByID(ctx, address.ID)
		require.NoError(t, err)
		assert.Equal(t, address.ID, found.ID)
	})
}
