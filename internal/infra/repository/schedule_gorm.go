package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/models"
)

type ScheduleGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *ScheduleGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	q := r.db.WithContext(ctx)

	// Loyalty counters are read-modify-written inside transactions; the row
	// lock keeps two concurrent mutations from both reading the same
	// snapshot and losing one update.
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var user models.User
	if err := q.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ScheduleGormRepository) FindUserByPhone(
	ctx context.Context,
	phone string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ScheduleGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ScheduleGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *ScheduleGormRepository) SaveUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *ScheduleGormRepository) ListServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ScheduleGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit("Services", "User", "Barber").
		Save(ap).Error
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Model(ap).Association("Services").Clear(); err != nil {
		return err
	}
	return tx.Delete(ap).Error
}

func (r *ScheduleGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Barber").
		Preload("Services").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) ListActiveAppointments(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	// Lock the competing rows only when a transaction is committing a new
	// claim; plain availability listings read without locks.
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var apps []models.Appointment
	if err := q.
		Where(
			"barber_id = ? AND date = ? AND status IN ?",
			barberID, date, domain.ActiveStatusStrings(),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ScheduleGormRepository) FindBlockedAppointment(
	ctx context.Context,
	barberID uint,
	date string,
	startTime string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND start_time = ? AND status = ?",
			barberID, date, startTime, string(domain.StatusBlocked),
		).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) ListDoneAppointmentsBetween(
	ctx context.Context,
	barberID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Services").
		Where(
			"barber_id = ? AND status = ? AND date >= ? AND date <= ?",
			barberID, string(domain.StatusDone), fromDate, toDate,
		).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Blackouts
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBlackoutsByDate(
	ctx context.Context,
	date string,
) ([]domain.Blackout, error) {

	var rows []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Blackout, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Blackout{
			ID:        row.ID,
			BarberID:  row.BarberID,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		})
	}
	return out, nil
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

func (r *ScheduleGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx, inTx: true})
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
