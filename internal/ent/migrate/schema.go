// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DataSourcingsColumns holds the columns for the "data_sourcings" table.
	DataSourcingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_id", Type: field.TypeString},
		{Name: "data_type", Type: field.TypeString},
		{Name: "reporting_period", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"Initialized", "DocumentSourcing", "DataExtraction", "Done"}, Default: "Initialized"},
		{Name: "document_collector", Type: field.TypeString, Nullable: true},
		{Name: "data_extractor", Type: field.TypeString, Nullable: true},
		{Name: "date_of_next_document_sourcing_attempt", Type: field.TypeTime, Nullable: true},
		{Name: "admin_comment", Type: field.TypeString, Nullable: true},
		{Name: "priority_override", Type: field.TypeEnum, Nullable: true, Enums: []string{"Low", "High"}},
		{Name: "documents", Type: field.TypeJSON, Nullable: true},
		{Name: "last_modified_date", Type: field.TypeInt64},
	}
	// DataSourcingsTable holds the schema information for the "data_sourcings" table.
	DataSourcingsTable = &schema.Table{
		Name:       "data_sourcings",
		Columns:    DataSourcingsColumns,
		PrimaryKey: []*schema.Column{DataSourcingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "datasourcing_company_id_data_type_reporting_period_state",
				Unique:  false,
				Columns: []*schema.Column{DataSourcingsColumns[1], DataSourcingsColumns[2], DataSourcingsColumns[3], DataSourcingsColumns[4]},
			},
			{
				Name:    "datasourcing_document_collector",
				Unique:  false,
				Columns: []*schema.Column{DataSourcingsColumns[5]},
			},
			{
				Name:    "datasourcing_data_extractor",
				Unique:  false,
				Columns: []*schema.Column{DataSourcingsColumns[6]},
			},
		},
	}
	// RequestsColumns holds the columns for the "requests" table.
	RequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_id", Type: field.TypeString},
		{Name: "data_type", Type: field.TypeString},
		{Name: "reporting_period", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"Open", "Processing", "Processed", "Withdrawn"}, Default: "Open"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"Low", "High"}, Default: "Low"},
		{Name: "member_comment", Type: field.TypeString, Nullable: true},
		{Name: "admin_comment", Type: field.TypeString, Nullable: true},
		{Name: "data_sourcing_id", Type: field.TypeUUID, Nullable: true},
		{Name: "creation_timestamp", Type: field.TypeInt64},
		{Name: "last_modified_date", Type: field.TypeInt64},
	}
	// RequestsTable holds the schema information for the "requests" table.
	RequestsTable = &schema.Table{
		Name:       "requests",
		Columns:    RequestsColumns,
		PrimaryKey: []*schema.Column{RequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "request_company_id_data_type_reporting_period",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[1], RequestsColumns[2], RequestsColumns[3]},
			},
			{
				Name:    "request_user_id",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[4]},
			},
			{
				Name:    "request_state_priority",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[5], RequestsColumns[6]},
			},
			{
				Name:    "request_data_sourcing_id",
				Unique:  false,
				Columns: []*schema.Column{RequestsColumns[9]},
			},
		},
	}
	// RevisionsColumns holds the columns for the "revisions" table.
	RevisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "entity_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"request", "data_sourcing"}},
		{Name: "state", Type: field.TypeString},
		{Name: "admin_comment", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeInt64},
	}
	// RevisionsTable holds the schema information for the "revisions" table.
	RevisionsTable = &schema.Table{
		Name:       "revisions",
		Columns:    RevisionsColumns,
		PrimaryKey: []*schema.Column{RevisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "revision_entity_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RevisionsColumns[1], RevisionsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DataSourcingsTable,
		RequestsTable,
		RevisionsTable,
	}
)

func init() {
}
