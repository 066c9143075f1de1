package app

import (
	"fmt"
	"sync"

	itemHTTP "github.com/allisson/itemsapi/internal/item/http"
	itemRepository "github.com/allisson/itemsapi/internal/item/repository"
	itemUseCase "github.com/allisson/itemsapi/internal/item/usecase"
)

type itemComponents struct {
	itemRepository itemUseCase.ItemRepository
	itemUseCase    itemUseCase.ItemUseCase
	itemHandler    *itemHTTP.ItemHandler

	itemRepositoryInit sync.Once
	itemUseCaseInit    sync.Once
	itemHandlerInit    sync.Once
}

// ItemRepository returns the item repository based on database driver.
func (c *Container) ItemRepository() (itemUseCase.ItemRepository, error) {
	var err error
	c.itemRepositoryInit.Do(func() {
		c.itemRepository, err = c.initItemRepository()
		if err != nil {
			c.initErrors["itemRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["itemRepository"]; exists {
		return nil, storedErr
	}
	return c.itemRepository, nil
}

// ItemUseCase returns the owner scoped item use case.
func (c *Container) ItemUseCase() (itemUseCase.ItemUseCase, error) {
	var err error
	c.itemUseCaseInit.Do(func() {
		c.itemUseCase, err = c.initItemUseCase()
		if err != nil {
			c.initErrors["itemUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["itemUseCase"]; exists {
		return nil, storedErr
	}
	return c.itemUseCase, nil
}

// ItemHandler returns the HTTP handler for item operations.
func (c *Container) ItemHandler() (*itemHTTP.ItemHandler, error) {
	var err error
	c.itemHandlerInit.Do(func() {
		c.itemHandler, err = c.initItemHandler()
		if err != nil {
			c.initErrors["itemHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["itemHandler"]; exists {
		return nil, storedErr
	}
	return c.itemHandler, nil
}

func (c *Container) initItemRepository() (itemUseCase.ItemRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for item repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return itemRepository.NewPostgreSQLItemRepository(db), nil
	case "mysql":
		return itemRepository.NewMySQLItemRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initItemUseCase() (itemUseCase.ItemUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for item use case: %w", err)
	}

	itemRepo, err := c.ItemRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get item repository for item use case: %w", err)
	}

	baseUseCase := itemUseCase.NewItemUseCase(txManager, itemRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for item use case: %w", err)
		}
		return itemUseCase.NewItemUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initItemHandler() (*itemHTTP.ItemHandler, error) {
	useCase, err := c.ItemUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get item use case for item handler: %w", err)
	}

	return itemHTTP.NewItemHandler(useCase, c.Logger()), nil
}
