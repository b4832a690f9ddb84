package appointment

import (
	"context"

	"gorm.io/gorm"

	"github.com/aladinbarber/booking-api/internal/audit"
	domain "github.com/aladinbarber/booking-api/internal/domain/schedule"
	"github.com/aladinbarber/booking-api/internal/models"
)

// errNotFound is what the gorm repository reports for a miss; guest-or-create
// flows branch on it.
var errNotFound = gorm.ErrRecordNotFound

// fakeRepo implements domain.Repository with overridable function fields.
// Unset fields fall back to "empty database" behavior. InTransaction runs
// the unit against the same fake; rollback is asserted by checking that
// writes were never issued.
type fakeRepo struct {
	getUserByID        func(id uint) (*models.User, error)
	findUserByPhone    func(phone string) (*models.User, error)
	findUserByEmail    func(email string) (*models.User, error)
	createUser         func(u *models.User) error
	saveUser           func(u *models.User) error
	getBarberByID      func(id uint) (*models.Barber, error)
	listServicesByIDs  func(ids []uint) ([]models.Service, error)
	createAppointment  func(ap *models.Appointment) error
	saveAppointment    func(ap *models.Appointment) error
	deleteAppointment  func(ap *models.Appointment) error
	getAppointmentByID func(id uint) (*models.Appointment, error)
	listActive         func(barberID uint, date string) ([]models.Appointment, error)
	findBlocked        func(barberID uint, date, startTime string) (*models.Appointment, error)
	listDoneBetween    func(barberID uint, from, to string) ([]models.Appointment, error)
	listBlackouts      func(date string) ([]domain.Blackout, error)
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if f.getUserByID != nil {
		return f.getUserByID(id)
	}
	return nil, errNotFound
}

func (f *fakeRepo) FindUserByPhone(_ context.Context, phone string) (*models.User, error) {
	if f.findUserByPhone != nil {
		return f.findUserByPhone(phone)
	}
	return nil, errNotFound
}

func (f *fakeRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findUserByEmail != nil {
		return f.findUserByEmail(email)
	}
	return nil, errNotFound
}

func (f *fakeRepo) CreateUser(_ context.Context, u *models.User) error {
	if f.createUser != nil {
		return f.createUser(u)
	}
	return nil
}

func (f *fakeRepo) SaveUser(_ context.Context, u *models.User) error {
	if f.saveUser != nil {
		return f.saveUser(u)
	}
	return nil
}

func (f *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	if f.getBarberByID != nil {
		return f.getBarberByID(id)
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListServicesByIDs(_ context.Context, ids []uint) ([]models.Service, error) {
	if f.listServicesByIDs != nil {
		return f.listServicesByIDs(ids)
	}
	return nil, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createAppointment != nil {
		return f.createAppointment(ap)
	}
	return nil
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	if f.saveAppointment != nil {
		return f.saveAppointment(ap)
	}
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	if f.deleteAppointment != nil {
		return f.deleteAppointment(ap)
	}
	return nil
}

func (f *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if f.getAppointmentByID != nil {
		return f.getAppointmentByID(id)
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListActiveAppointments(_ context.Context, barberID uint, date string) ([]models.Appointment, error) {
	if f.listActive != nil {
		return f.listActive(barberID, date)
	}
	return nil, nil
}

func (f *fakeRepo) FindBlockedAppointment(_ context.Context, barberID uint, date, startTime string) (*models.Appointment, error) {
	if f.findBlocked != nil {
		return f.findBlocked(barberID, date, startTime)
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListDoneAppointmentsBetween(_ context.Context, barberID uint, from, to string) ([]models.Appointment, error) {
	if f.listDoneBetween != nil {
		return f.listDoneBetween(barberID, from, to)
	}
	return nil, nil
}

func (f *fakeRepo) ListBlackoutsByDate(_ context.Context, date string) ([]domain.Blackout, error) {
	if f.listBlackouts != nil {
		return f.listBlackouts(date)
	}
	return nil, nil
}

func (f *fakeRepo) InTransaction(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

func uintPtr(v uint) *uint { return &v }

func testBarber() *models.Barber {
	return &models.Barber{ID: 1, Name: "Aladin"}
}

func comboService() models.Service {
	return models.Service{ID: 1, Name: "Coupe + Barbe", Price: 50}
}

func plainService() models.Service {
	return models.Service{ID: 2, Name: "Coupe Homme", Price: 30}
}
