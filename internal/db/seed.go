package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aladinbarber/booking-api/internal/models"
)

// Seed installs the super-admin account, the service catalog and the default
// barbers. It is idempotent: existing rows are updated by name, never
// duplicated.
func Seed(db *gorm.DB) {
	seedAdmin(db)
	seedServices(db)
	seedBarbers(db)
}

func seedAdmin(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("aladinbarbershop123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed: failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         "Super Admin",
		Username:     "superadmin123",
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
		Email:        "superadmin@barber.com",
		Phone:        "0600000000",
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role", "email", "phone"}),
	}).Create(&admin).Error; err != nil {
		log.Printf("seed: admin: %v", err)
	}
}

func seedServices(db *gorm.DB) {
	services := []models.Service{
		{Name: "Coupe", Description: "Coupe aux ciseaux ou tondeuse", Price: 10, DurationMin: 30},
		{Name: "Barbe", Description: "Taille de barbe", Price: 7, DurationMin: 30},
		{Name: "Coupe (cheveux courts)", Description: "Coupe cheveux courts", Price: 8, DurationMin: 30},
		{Name: "Barbe (courte)", Description: "Taille barbe courte", Price: 5, DurationMin: 30},
		{Name: "Coupe + Barbe avec machine (Zéro)", Description: "Pack complet tondeuse", Price: 10, DurationMin: 45},
		{Name: "Coupe + Barbe Dégradé", Description: "Pack dégradé précis", Price: 13, DurationMin: 45},
		{Name: "Coupe + Barbe Dégradé + Fixation", Description: "Pack complet avec finition", Price: 15, DurationMin: 45},
		{Name: "Coupe + Barbe + Brushing", Description: "Style complet", Price: 20, DurationMin: 45},
		{Name: "Coupe + Barbe + Masque Noir", Description: "Soin complet", Price: 20, DurationMin: 45},
		{Name: "Patchs pour les yeux", Description: "Soin contour des yeux", Price: 5, DurationMin: 15},
		{Name: "Coupe d'enfant (jusqu'à 5 ans)", Description: "Coupe junior", Price: 7, DurationMin: 30},
		{Name: "Brushing", Description: "Mise en forme", Price: 7, DurationMin: 15},
		{Name: "Masque Noir", Description: "Soin purifiant", Price: 8, DurationMin: 15},
		{Name: "Épilation à la cire", Description: "Nettoyage précis", Price: 3, DurationMin: 15},
	}

	for _, s := range services {
		svc := s
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "price", "duration_min"}),
		}).Create(&svc).Error; err != nil {
			log.Printf("seed: service %q: %v", s.Name, err)
		}
	}
}

func seedBarbers(db *gorm.DB) {
	var count int64
	db.Model(&models.Barber{}).Count(&count)
	if count > 0 {
		return
	}

	barbers := []models.Barber{
		{Name: "Aladin", Speciality: "Barbier", Photo: "ala.jpeg", Description: "Spécialiste en coupes modernes et dégradés de précision. 10 ans d'expérience."},
		{Name: "Hamouda", Speciality: "Barbier", Photo: "hamouda.jpeg", Description: "Expert en taille de barbe traditionnelle et soins du visage. Un savoir-faire unique."},
		{Name: "Ahmed", Speciality: "Barbier", Photo: "ahmed.jpeg", Description: "Maîtrise parfaite des coupes classiques et des styles vintage. Le souci du détail."},
	}

	if err := db.Create(&barbers).Error; err != nil {
		log.Printf("seed: barbers: %v", err)
	}
}
