package main

import (
	"log"

	"hotel/internal/config"
	"hotel/internal/database"
	"hotel/internal/domain"
	"hotel/internal/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedUser struct {
	email    string
	password string
	name     string
	role     domain.UserRole
}

var users = []seedUser{
	{"admin@hotel.local", "admin123", "Administrador", domain.RoleAdmin},
	{"recepcion@hotel.local", "operador123", "Recepción", domain.RoleOperator},
	{"huesped@hotel.local", "huesped123", "Huésped Demo", domain.RoleGuest},
}

var rooms = []domain.Room{
	{Number: "101", Type: domain.RoomSingle, Price: 80, Capacity: 1, Floor: 1, Amenities: []string{"wifi", "tv"}},
	{Number: "102", Type: domain.RoomSingle, Price: 80, Capacity: 1, Floor: 1, Amenities: []string{"wifi", "tv"}},
	{Number: "103", Type: domain.RoomDouble, Price: 120, Capacity: 2, Floor: 1, Amenities: []string{"wifi", "tv", "minibar"}},
	{Number: "104", Type: domain.RoomDouble, Price: 120, Capacity: 2, Floor: 1, Amenities: []string{"wifi", "tv", "minibar"}},
	{Number: "201", Type: domain.RoomFamily, Price: 180, Capacity: 4, Floor: 2, Amenities: []string{"wifi", "tv", "cocineta"}},
	{Number: "202", Type: domain.RoomFamily, Price: 180, Capacity: 5, Floor: 2, Amenities: []string{"wifi", "tv", "cocineta"}},
	{Number: "301", Type: domain.RoomSuite, Price: 260, Capacity: 2, Floor: 3, Amenities: []string{"wifi", "tv", "jacuzzi", "vista al mar"},
		Description: "Suite con terraza privada"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(logger.Config{Level: cfg.Log.Level, Environment: cfg.App.Env, ServiceName: "hotel-seed"})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg.DB.URL, database.Options{}, zl)
	if err != nil {
		zl.Fatal("db connection failed", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		zl.Fatal("migrate failed", zap.Error(err))
	}

	if err := seedUsers(db, zl); err != nil {
		zl.Fatal("seed users", zap.Error(err))
	}
	if err := seedRooms(db, zl); err != nil {
		zl.Fatal("seed rooms", zap.Error(err))
	}
	zl.Info("seed completed")
}

// seedUsers is idempotent: existing emails are left untouched.
func seedUsers(db *gorm.DB, log *zap.Logger) error {
	for _, su := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := domain.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         su.role,
		}
		res := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&u)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			log.Info("user created", zap.String("email", su.email), zap.String("role", string(su.role)), zap.String("password", su.password))
		}
	}
	return nil
}

func seedRooms(db *gorm.DB, log *zap.Logger) error {
	for i := range rooms {
		r := rooms[i]
		r.Status = domain.RoomAvailable
		res := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "number"}},
			// matches the partial unique index on live rooms
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "deleted_at IS NULL"}}},
			DoNothing:   true,
		}).Create(&r)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			log.Info("room created", zap.String("numero", r.Number), zap.String("tipo", string(r.Type)))
		}
	}
	return nil
}
