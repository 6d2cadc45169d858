package store

import (
	"context"
	"fmt"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	instancepb "cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SpannerPath splits projects/<p>/instances/<i>/databases/<d> into its parts.
func SpannerPath(db string) (project, inst, name string, err error) {
	parts := strings.Split(db, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return "", "", "", fmt.Errorf("malformed spanner database path %q", db)
	}
	return parts[1], parts[3], parts[5], nil
}

// EnsureSpannerDatabase creates the instance (emulator config) and the
// database named by db when they are missing.
func EnsureSpannerDatabase(ctx context.Context, db string) error {
	project, instanceID, databaseID, err := SpannerPath(db)
	if err != nil {
		return err
	}
	parent := "projects/" + project
	instName := parent + "/instances/" + instanceID

	instAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("instance admin client: %w", err)
	}
	defer instAdmin.Close()

	if _, err := instAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: instName}); err != nil {
		if status.Code(err) != codes.NotFound {
			return fmt.Errorf("GetInstance: %w", err)
		}
		op, err := instAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
			Parent:     parent,
			InstanceId: instanceID,
			Instance: &instancepb.Instance{
				Config:      parent + "/instanceConfigs/emulator-config",
				DisplayName: "Gift Finder",
				NodeCount:   1,
			},
		})
		if err != nil && status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("CreateInstance: %w", err)
		}
		if err == nil {
			if _, err := op.Wait(ctx); err != nil {
				return fmt.Errorf("CreateInstance wait: %w", err)
			}
		}
	}

	dbAdmin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer dbAdmin.Close()

	op, err := dbAdmin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          instName,
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", databaseID),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("CreateDatabase: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("CreateDatabase wait: %w", err)
	}
	return nil
}

// ApplySpannerDDL runs statements through the database admin API.
func ApplySpannerDDL(ctx context.Context, db string, statements []string) error {
	if len(statements) == 0 {
		return fmt.Errorf("no DDL statements for %s", db)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: statements,
	})
	if err != nil {
		return fmt.Errorf("UpdateDatabaseDdl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("UpdateDatabaseDdl wait: %w", err)
	}
	return nil
}

// DropSpannerDatabase removes db. Used for per-run test databases.
func DropSpannerDatabase(ctx context.Context, db string) error {
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()
	return admin.DropDatabase(ctx, &databasepb.DropDatabaseRequest{Database: db})
}
