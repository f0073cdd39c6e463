package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/medtrack/inventory-server/internal/domain"

	"github.com/jmoiron/sqlx"
)

const deviceSelect = `
	SELECT d.*, dep.name AS department_name, dt.name_ar AS device_type_name
	FROM devices d
	LEFT JOIN departments dep ON d.department_id = dep.id
	LEFT JOIN device_types dt ON d.device_type_id = dt.id
`

type deviceRepository struct {
	db *sqlx.DB
}

func NewDeviceRepository(db *sqlx.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Create(ctx context.Context, device *domain.Device) (int64, error) {
	query := `
		INSERT INTO devices (
			name, supplier, manufacturer, serial, department_id, supply_date,
			install_date, service_engineer, repair_date, signature_png,
			photo_url, manufacturer_url, description, model, device_type_id,
			engineer_phone, next_maintenance_date, last_maintenance_date, contract_photos,
			cost, is_under_warranty, warranty_expiry_date, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		device.Name,
		device.Supplier,
		device.Manufacturer,
		device.Serial,
		device.DepartmentID,
		device.SupplyDate,
		device.InstallDate,
		device.ServiceEngineer,
		device.RepairDate,
		device.SignaturePNG,
		device.PhotoURL,
		device.ManufacturerURL,
		device.Description,
		device.Model,
		device.DeviceTypeID,
		device.EngineerPhone,
		device.NextMaintenanceDate,
		device.LastMaintenanceDate,
		device.ContractPhotos,
		device.Cost,
		device.IsUnderWarranty,
		device.WarrantyExpiryDate,
		device.CreatedBy,
	).Scan(&id)

	return id, err
}

func (r *deviceRepository) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	var device domain.Device
	err := r.db.GetContext(ctx, &device, deviceSelect+` WHERE d.id = $1`, id)
	if err != nil {
		return nil, err
	}

	return &device, nil
}

func (r *deviceRepository) ListAll(ctx context.Context) ([]*domain.Device, error) {
	var devices []*domain.Device
	err := r.db.SelectContext(ctx, &devices, deviceSelect+` ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, err
	}

	return devices, nil
}

func (r *deviceRepository) ListPage(ctx context.Context, opts domain.DeviceListOptions) ([]*domain.Device, int, error) {
	var conditions []string
	var args []interface{}

	if q := strings.TrimSpace(opts.Query); q != "" {
		like := "%" + q + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(d.name ILIKE $%d OR d.serial ILIKE $%d OR d.manufacturer ILIKE $%d OR d.supplier ILIKE $%d)",
			len(args)+1, len(args)+2, len(args)+3, len(args)+4))
		args = append(args, like, like, like, like)
	}
	if opts.DepartmentID != nil {
		conditions = append(conditions, fmt.Sprintf("d.department_id = $%d", len(args)+1))
		args = append(args, *opts.DepartmentID)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM devices d" + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	orderClause := " ORDER BY d.created_at DESC"
	switch opts.Sort {
	case "name_asc":
		orderClause = " ORDER BY d.name ASC"
	case "name_desc":
		orderClause = " ORDER BY d.name DESC"
	}

	query := deviceSelect + whereClause + orderClause +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, opts.Limit, (opts.Page-1)*opts.Limit)

	var devices []*domain.Device
	if err := r.db.SelectContext(ctx, &devices, query, args...); err != nil {
		return nil, 0, err
	}

	return devices, total, nil
}

func (r *deviceRepository) FindBySerial(ctx context.Context, serial string) (*domain.Device, error) {
	serial = strings.TrimSpace(serial)

	var device domain.Device
	err := r.db.GetContext(ctx, &device,
		deviceSelect+` WHERE LOWER(TRIM(d.serial)) = LOWER($1) LIMIT 1`, serial)
	if err == nil {
		return &device, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Partial match fallback for hand-typed or damaged labels
	err = r.db.GetContext(ctx, &device,
		deviceSelect+` WHERE TRIM(d.serial) ILIKE '%' || $1 || '%' LIMIT 1`, serial)
	if err != nil {
		return nil, err
	}

	return &device, nil
}

func (r *deviceRepository) Update(ctx context.Context, id int64, device *domain.Device) error {
	query := `
		UPDATE devices SET
			name = $1, supplier = $2, manufacturer = $3, serial = $4, department_id = $5,
			supply_date = $6, install_date = $7, service_engineer = $8, repair_date = $9,
			signature_png = $10, photo_url = $11, manufacturer_url = $12, description = $13, model = $14,
			device_type_id = $15, engineer_phone = $16, next_maintenance_date = $17, last_maintenance_date = $18,
			contract_photos = $19, cost = $20, is_under_warranty = $21, warranty_expiry_date = $22
		WHERE id = $23
	`

	_, err := r.db.ExecContext(ctx, query,
		device.Name,
		device.Supplier,
		device.Manufacturer,
		device.Serial,
		device.DepartmentID,
		device.SupplyDate,
		device.InstallDate,
		device.ServiceEngineer,
		device.RepairDate,
		device.SignaturePNG,
		device.PhotoURL,
		device.ManufacturerURL,
		device.Description,
		device.Model,
		device.DeviceTypeID,
		device.EngineerPhone,
		device.NextMaintenanceDate,
		device.LastMaintenanceDate,
		device.ContractPhotos,
		device.Cost,
		device.IsUnderWarranty,
		device.WarrantyExpiryDate,
		id,
	)

	return err
}

func (r *deviceRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM devices WHERE id = $1`, id)
	return err
}

func (r *deviceRepository) ListDueCandidates(ctx context.Context, departmentID, deviceTypeID *int64) ([]*domain.DueDevice, error) {
	query := `
		SELECT
			d.id, d.name, d.serial, d.department_id, d.device_type_id,
			dep.name AS department_name, dt.name_ar AS device_type_name,
			d.next_maintenance_date, d.last_maintenance_date,
			d.engineer_phone, d.service_engineer
		FROM devices d
		LEFT JOIN departments dep ON d.department_id = dep.id
		LEFT JOIN device_types dt ON d.device_type_id = dt.id
	`

	var conditions []string
	var args []interface{}

	if departmentID != nil {
		conditions = append(conditions, fmt.Sprintf("d.department_id = $%d", len(args)+1))
		args = append(args, *departmentID)
	}
	if deviceTypeID != nil {
		conditions = append(conditions, fmt.Sprintf("d.device_type_id = $%d", len(args)+1))
		args = append(args, *deviceTypeID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var candidates []*domain.DueDevice
	if err := r.db.SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, err
	}

	return candidates, nil
}
