package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"homeservices/internal/apperrors"
	"homeservices/internal/query"
	"homeservices/models"
)

// Service (Prestation)

func (s *Storage) ListServices(ctx context.Context, p query.Params) ([]models.Service, error) {
	q, args, err := query.Services.ListSQL(p)
	if err != nil {
		return nil, apperrors.NewInternal("build services query", err)
	}
	services := []models.Service{}
	if err := s.db.SelectContext(ctx, &services, q, args...); err != nil {
		return nil, apperrors.NewInternal("list services", err)
	}
	for i := range services {
		services[i].Normalize()
	}
	return services, nil
}

func (s *Storage) ServiceStats(ctx context.Context, p query.Params) (models.ServiceStats, error) {
	var st models.ServiceStats
	q, args, err := query.Services.StatsSQL(p, query.ServiceAggregates(query.Services.Table))
	if err != nil {
		return st, apperrors.NewInternal("build services stats query", err)
	}
	if err := s.db.GetContext(ctx, &st, q, args...); err != nil {
		return st, apperrors.NewInternal("services stats", err)
	}
	st.AvgRating = query.RoundRating(st.AvgRating)
	return st, nil
}

func (s *Storage) GetService(ctx context.Context, id int) (*models.Service, error) {
	q, args, err := query.Services.ByIDSQL(id)
	if err != nil {
		return nil, apperrors.NewInternal("build service query", err)
	}
	svc := &models.Service{}
	if err := s.db.GetContext(ctx, svc, q, args...); err != nil {
		return nil, notFoundOr(err, "service")
	}
	svc.Normalize()
	return svc, nil
}

func (s *Storage) CreateService(ctx context.Context, in *models.ServiceInput) (*models.Service, error) {
	query := `
        INSERT INTO services
            (nom, description, description_longue, icone, image, avantages,
             duree, prix, note, nombre_avis, actif)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING *`
	svc := &models.Service{}
	err := s.db.QueryRowxContext(ctx, query,
		in.Name, in.Description, in.LongDescription, in.Icon, in.Image, pq.StringArray(in.Benefits),
		in.Duration, in.Price, in.Rating, in.ReviewCount, in.IsActive()).
		StructScan(svc)
	if err != nil {
		return nil, apperrors.NewInternal("create service", err)
	}
	svc.Normalize()
	return svc, nil
}

func (s *Storage) UpdateService(ctx context.Context, id int, in *models.ServiceInput) (*models.Service, error) {
	query := `
        UPDATE services
        SET nom=$1, description=$2, description_longue=$3, icone=$4, image=$5, avantages=$6,
            duree=$7, prix=$8, note=$9, nombre_avis=$10, actif=$11, updated_at=NOW()
        WHERE id=$12 AND actif
        RETURNING *`
	svc := &models.Service{}
	err := s.db.QueryRowxContext(ctx, query,
		in.Name, in.Description, in.LongDescription, in.Icon, in.Image, pq.StringArray(in.Benefits),
		in.Duration, in.Price, in.Rating, in.ReviewCount, in.IsActive(), id).
		StructScan(svc)
	if err != nil {
		return nil, notFoundOr(err, "service")
	}
	svc.Normalize()
	return svc, nil
}

// MissingServiceIDs returns the ids among ids that match no service row,
// active or not.
func (s *Storage) MissingServiceIDs(ctx context.Context, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []int
	query := `SELECT id FROM services WHERE id = ANY($1)`
	if err := s.db.SelectContext(ctx, &found, query, pq.Array(ids)); err != nil {
		return nil, apperrors.NewInternal("check service ids", err)
	}
	exists := make(map[int]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}
	var missing []int
	for _, id := range ids {
		if !exists[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// Agency (Agence)

func (s *Storage) ListAgencies(ctx context.Context, p query.Params) ([]models.Agency, error) {
	q, args, err := query.Agencies.ListSQL(p)
	if err != nil {
		return nil, apperrors.NewInternal("build agencies query", err)
	}
	agencies := []models.Agency{}
	if err := s.db.SelectContext(ctx, &agencies, q, args...); err != nil {
		return nil, apperrors.NewInternal("list agencies", err)
	}
	if err := s.attachServices(ctx, s.db, agencies); err != nil {
		return nil, err
	}
	return agencies, nil
}

func (s *Storage) AgencyStats(ctx context.Context, p query.Params) (models.AgencyStats, error) {
	var st models.AgencyStats
	q, args, err := query.Agencies.StatsSQL(p, query.AgencyAggregates(query.Agencies.Table))
	if err != nil {
		return st, apperrors.NewInternal("build agencies stats query", err)
	}
	if err := s.db.GetContext(ctx, &st, q, args...); err != nil {
		return st, apperrors.NewInternal("agencies stats", err)
	}
	st.AvgRating = query.RoundRating(st.AvgRating)
	return st, nil
}

func (s *Storage) GetAgency(ctx context.Context, id int) (*models.Agency, error) {
	q, args, err := query.Agencies.ByIDSQL(id)
	if err != nil {
		return nil, apperrors.NewInternal("build agency query", err)
	}
	a := models.Agency{}
	if err := s.db.GetContext(ctx, &a, q, args...); err != nil {
		return nil, notFoundOr(err, "agency")
	}
	agencies := []models.Agency{a}
	if err := s.attachServices(ctx, s.db, agencies); err != nil {
		return nil, err
	}
	return &agencies[0], nil
}

// CreateAgency inserts the agency and its service links in one transaction.
func (s *Storage) CreateAgency(ctx context.Context, in *models.AgencyInput) (*models.Agency, error) {
	query := `
        INSERT INTO agencies
            (nom, description, ville, adresse, telephone, email, horaires, image,
             note, nombre_avis, annee_experience, nombre_clients, actif)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING *`
	return s.writeAgency(ctx, in, func(tx *sqlx.Tx, a *models.Agency) error {
		return tx.QueryRowxContext(ctx, query,
			in.Name, in.Description, in.City, in.Address, in.Phone, in.Email, in.Hours, in.Image,
			in.Rating, in.ReviewCount, in.YearsExperience, in.ClientCount, in.IsActive()).
			StructScan(a)
	})
}

// UpdateAgency rewrites the agency; links are replaced only when
// in.ServiceIDs is set.
func (s *Storage) UpdateAgency(ctx context.Context, id int, in *models.AgencyInput) (*models.Agency, error) {
	query := `
        UPDATE agencies
        SET nom=$1, description=$2, ville=$3, adresse=$4, telephone=$5, email=$6, horaires=$7,
            image=$8, note=$9, nombre_avis=$10, annee_experience=$11, nombre_clients=$12,
            actif=$13, updated_at=NOW()
        WHERE id=$14 AND actif
        RETURNING *`
	return s.writeAgency(ctx, in, func(tx *sqlx.Tx, a *models.Agency) error {
		return tx.QueryRowxContext(ctx, query,
			in.Name, in.Description, in.City, in.Address, in.Phone, in.Email, in.Hours, in.Image,
			in.Rating, in.ReviewCount, in.YearsExperience, in.ClientCount, in.IsActive(), id).
			StructScan(a)
	})
}

func (s *Storage) writeAgency(ctx context.Context, in *models.AgencyInput, write func(*sqlx.Tx, *models.Agency) error) (*models.Agency, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewInternal("begin agency write", err)
	}
	defer tx.Rollback()

	a := models.Agency{}
	if err := write(tx, &a); err != nil {
		return nil, notFoundOr(err, "agency")
	}
	if ids := in.UniqueServiceIDs(); ids != nil {
		if err := replaceAgencyServices(ctx, tx, a.ID, ids); err != nil {
			return nil, err
		}
	}

	agencies := []models.Agency{a}
	if err := s.attachServices(ctx, tx, agencies); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, apperrors.NewInternal("commit agency write", err)
	}
	return &agencies[0], nil
}

func replaceAgencyServices(ctx context.Context, tx *sqlx.Tx, agencyID int, serviceIDs []int) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM agency_services WHERE agency_id = $1`, agencyID); err != nil {
		return apperrors.NewInternal("clear agency services", err)
	}
	if len(serviceIDs) == 0 {
		return nil
	}
	query := `
        INSERT INTO agency_services (agency_id, service_id)
        SELECT $1, unnest($2::int[])
        ON CONFLICT DO NOTHING`
	if _, err := tx.ExecContext(ctx, query, agencyID, pq.Array(serviceIDs)); err != nil {
		return apperrors.NewInternal("link agency services", err)
	}
	return nil
}

// linkedService is a service row tagged with the agency it is linked to.
type linkedService struct {
	AgencyID int `db:"agency_id"`
	models.Service
}

// attachServices loads the linked services of every agency in one query.
func (s *Storage) attachServices(ctx context.Context, q sqlx.QueryerContext, agencies []models.Agency) error {
	if len(agencies) == 0 {
		return nil
	}
	ids := make([]int, len(agencies))
	for i, a := range agencies {
		ids[i] = a.ID
	}

	query, args, err := sqlx.In(`
        SELECT l.agency_id, s.*
        FROM services s
        JOIN agency_services l ON l.service_id = s.id
        WHERE l.agency_id IN (?)
        ORDER BY s.created_at DESC, s.id DESC`, ids)
	if err != nil {
		return apperrors.NewInternal("build agency services query", err)
	}

	var rows []linkedService
	if err := sqlx.SelectContext(ctx, q, &rows, s.db.Rebind(query), args...); err != nil {
		return apperrors.NewInternal("load agency services", err)
	}

	byAgency := make(map[int][]models.Service, len(agencies))
	for _, row := range rows {
		byAgency[row.AgencyID] = append(byAgency[row.AgencyID], row.Service)
	}
	for i := range agencies {
		agencies[i].Services = byAgency[agencies[i].ID]
		agencies[i].Normalize()
	}
	return nil
}
