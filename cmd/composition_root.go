package cmd

import (
	"fmt"
	"strings"

	"tableside/internal/adapters/out/identity"
	"tableside/internal/adapters/out/postgres"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddItemsCommandHandler() commands.AddItemsCommandHandler {
	var f commands.AddItemsUoWFactory = FuncAddItemsUoWFactory(func() commands.AddItemsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateItemStatusCommandHandler() commands.UpdateItemStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateItemStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenQueueQueryHandler() queries.GetKitchenQueueQueryHandler {
	// read-only repository bound to the base connection, no transaction
	return queries.NewGetKitchenQueueQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetReportQueryHandler() queries.GetReportQueryHandler {
	return queries.NewGetReportQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

// CreateIdentityProvider parses the AUTH_TOKENS config value, a
// comma-separated list of token:restaurantId pairs.
func (c *CompositionRoot) CreateIdentityProvider(rawTokens string) (identity.StaticTokenProvider, error) {
	tokens := make(map[string]kernel.UUID)
	for _, pair := range strings.Split(rawTokens, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		token, rawID, found := strings.Cut(pair, ":")
		if !found {
			return identity.StaticTokenProvider{}, fmt.Errorf("auth token %q is not in token:restaurantId form", pair)
		}

		restaurantID, err := kernel.UUIDFromString(rawID)
		if err != nil {
			return identity.StaticTokenProvider{}, fmt.Errorf("auth token %q: %w", pair, err)
		}
		tokens[token] = restaurantID
	}

	if len(tokens) == 0 {
		return identity.StaticTokenProvider{}, fmt.Errorf("AUTH_TOKENS must define at least one token")
	}

	return identity.NewStaticTokenProvider(tokens), nil
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncAddItemsUoWFactory func() commands.AddItemsUoW

func (f FuncAddItemsUoWFactory) Create() commands.AddItemsUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}
