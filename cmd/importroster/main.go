package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm/clause"

	"factorygate.in/factorygate/model"
	"factorygate.in/factorygate/store"
	"factorygate.in/factorygate/utils"
)

// Loads the punch roster from CSV. Workers files carry "id,name" rows,
// employee files "id,name,password". Rows are upserted on the external id so
// re-importing an updated export is safe.
func main() {
	kind := flag.String("kind", "worker", "roster kind: worker or employee")
	path := flag.String("file", "", "CSV file to import")
	flag.Parse()

	if *path == "" {
		log.Fatal("usage: importroster -kind worker|employee -file roster.csv")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	records, err := utils.ParseCSV(f)
	if err != nil {
		log.Fatalf("failed to parse %s: %v", *path, err)
	}
	if len(records) > 0 && records[0][0] == "id" {
		records = records[1:]
	}

	st, err := store.Open(os.Getenv("DSN"), 5)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	switch *kind {
	case "worker":
		workers, err := parseWorkers(records)
		if err != nil {
			log.Fatalf("bad worker roster: %v", err)
		}
		err = st.DB().Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "worker_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "active"}),
		}).Create(&workers).Error
		if err != nil {
			log.Fatalf("failed to upsert workers: %v", err)
		}
		log.Printf("[INFO] imported %d workers", len(workers))
	case "employee":
		employees, err := parseEmployees(records)
		if err != nil {
			log.Fatalf("bad employee roster: %v", err)
		}
		err = st.DB().Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "emp_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "password", "active"}),
		}).Create(&employees).Error
		if err != nil {
			log.Fatalf("failed to upsert employees: %v", err)
		}
		log.Printf("[INFO] imported %d employees", len(employees))
	default:
		log.Fatalf("unknown roster kind %q", *kind)
	}
}

func parseWorkers(records [][]string) ([]model.Worker, error) {
	for i, row := range records {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: expected id,name, got %v", i+1, row)
		}
	}
	return utils.Map(records, func(row []string) model.Worker {
		return model.Worker{WorkerID: row[0], Name: row[1], Active: true}
	}), nil
}

func parseEmployees(records [][]string) ([]model.Employee, error) {
	for i, row := range records {
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: expected id,name,password, got %v", i+1, row)
		}
	}
	return utils.Map(records, func(row []string) model.Employee {
		return model.Employee{EmpID: row[0], Name: row[1], Password: row[2], Active: true}
	}), nil
}
