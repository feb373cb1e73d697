package main

import (
	"log"
	"os"

	"gorm.io/gorm/clause"

	"factorygate.in/factorygate/model"
	"factorygate.in/factorygate/store"
	"factorygate.in/factorygate/utils"
)

// Creates the attendance schema and loads a starter configuration. Safe to
// re-run; existing settings rows are left untouched.
func main() {

	dsn := os.Getenv("DSN") //"root:development@tcp(localhost:3306)/factorygate?parseTime=true"
	st, err := store.Open(dsn, 5)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	if err := st.AutoMigrate(); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	settings := []model.SettingRow{
		{Key: "FACTORY_LAT", Value: "28.7041"},
		{Key: "FACTORY_LNG", Value: "77.1025"},
		{Key: "GEOFENCE_RADIUS_M", Value: "80"},
		{Key: "TIMEZONE", Value: "Asia/Kolkata"},
		{Key: "SUPERVISOR_PIN", Value: "4321"},
	}
	err = st.DB().Clauses(clause.OnConflict{DoNothing: true}).Create(&settings).Error
	if err != nil {
		log.Fatalf("failed to seed settings: %v", err)
	}

	locations := []model.Location{
		{Name: "Main Gate", Latitude: 28.7041, Longitude: 77.1025},
		{Name: "Warehouse", Latitude: 28.7052, Longitude: 77.1031, RadiusM: utils.Ptr(120.0)},
	}
	err = st.DB().Clauses(clause.OnConflict{DoNothing: true}).Create(&locations).Error
	if err != nil {
		log.Fatalf("failed to seed locations: %v", err)
	}

	log.Println("[INFO] schema migrated and defaults seeded")
}
