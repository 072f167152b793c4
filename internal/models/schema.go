package models

// Column describes how one field is stored. Type is the PostgreSQL column
// type AutoMigrate creates for it.
type Column struct {
	Name          string
	Type          string
	Nullable      bool
	Unique        bool
	PrimaryKey    bool
	AutoIncrement bool
}

// Table is the storage contract for one entity. The gorm tags on the entity
// structs must agree with it.
type Table struct {
	Name    string
	Model   interface{}
	Columns []Column
}

func identity() Column {
	return Column{Name: "id", Type: "bigserial", PrimaryKey: true, AutoIncrement: true}
}

func createdAt() Column {
	return Column{Name: "created_at", Type: "timestamptz"}
}

// Tables returns the mapping for every entity, in migration order.
func Tables() []Table {
	return []Table{
		{
			Name:  "patients",
			Model: &Patient{},
			Columns: []Column{
				identity(),
				{Name: "first_name", Type: "text"},
				{Name: "last_name", Type: "text"},
				{Name: "email", Type: "text", Unique: true},
				{Name: "phone", Type: "text"},
				{Name: "date_of_birth", Type: "text", Nullable: true},
				{Name: "gender", Type: "text", Nullable: true},
				{Name: "address", Type: "text", Nullable: true},
				{Name: "medical_id", Type: "text", Nullable: true, Unique: true},
				createdAt(),
			},
		},
		{
			Name:  "doctors",
			Model: &Doctor{},
			Columns: []Column{
				identity(),
				{Name: "first_name", Type: "text"},
				{Name: "last_name", Type: "text"},
				{Name: "email", Type: "text", Unique: true},
				{Name: "specialty", Type: "text"},
				{Name: "phone", Type: "text"},
				{Name: "license_number", Type: "text", Unique: true},
				{Name: "years_of_experience", Type: "bigint", Nullable: true},
				createdAt(),
			},
		},
		{
			Name:  "appointments",
			Model: &Appointment{},
			Columns: []Column{
				identity(),
				{Name: "patient_id", Type: "bigint"},
				{Name: "doctor_id", Type: "bigint"},
				{Name: "patient_name", Type: "text"},
				{Name: "doctor_name", Type: "text"},
				{Name: "date_time", Type: "timestamptz"},
				{Name: "reason", Type: "text"},
				{Name: "status", Type: "varchar(32)"},
				{Name: "notes", Type: "text", Nullable: true},
				createdAt(),
			},
		},
		{
			Name:  "clinical_history",
			Model: &ClinicalHistory{},
			Columns: []Column{
				identity(),
				{Name: "patient_id", Type: "bigint"},
				{Name: "patient_name", Type: "text"},
				{Name: "date", Type: "timestamptz"},
				{Name: "diagnosis", Type: "text"},
				{Name: "treatment", Type: "text"},
				{Name: "notes", Type: "text"},
				{Name: "doctor_name", Type: "text"},
				createdAt(),
			},
		},
		{
			Name:  "quick_consultations",
			Model: &QuickConsultation{},
			Columns: []Column{
				identity(),
				{Name: "patient_id", Type: "bigint"},
				{Name: "patient_name", Type: "text"},
				{Name: "doctor_id", Type: "bigint"},
				{Name: "doctor_name", Type: "text"},
				{Name: "date", Type: "timestamptz"},
				{Name: "notes", Type: "text"},
				{Name: "status", Type: "varchar(32)"},
				createdAt(),
			},
		},
	}
}

// Models returns the entity values in migration order.
func Models() []interface{} {
	tables := Tables()
	out := make([]interface{}, 0, len(tables))
	for _, t := range tables {
		out = append(out, t.Model)
	}
	return out
}
