package migration

import (
	bankingdomain "github.com/marinex/fueleu/internal/banking/domain"
	compliancedomain "github.com/marinex/fueleu/internal/compliance/domain"
	"github.com/marinex/fueleu/internal/config"
	poolingdomain "github.com/marinex/fueleu/internal/pooling/domain"
	routedomain "github.com/marinex/fueleu/internal/route/domain"
	"github.com/marinex/fueleu/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite dev mode has no migrate driver wired; the models carry
			// the same schema in their tags.
			if err := conn.AutoMigrate(
				&routedomain.Route{},
				&compliancedomain.ComplianceBalance{},
				&bankingdomain.BankingRecord{},
				&poolingdomain.Pool{},
				&poolingdomain.PoolMember{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoFleet {
			return seed.EnsureDemoFleet(conn)
		}
		return nil
	}),
)
