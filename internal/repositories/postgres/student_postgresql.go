package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/UES-FIA-2024/placement-service/internal/models"
	"github.com/UES-FIA-2024/placement-service/internal/repositories"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Career").
		First(&student, id).Error
	if err != nil {
		return nil, fmt.Errorf("get student by id: %w", err)
	}
	return &student, nil
}

func (r *studentRepository) GetByUserID(ctx context.Context, userID uint) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Career").
		Where("id_usuario = ?", userID).
		First(&student).Error
	if err != nil {
		return nil, fmt.Errorf("get student by user id: %w", err)
	}
	return &student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]*models.Student, error) {
	var students []*models.Student
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Career").
		Order("id").
		Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	if err := r.db.WithContext(ctx).Save(student).Error; err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

func (r *studentRepository) PhoneInUse(ctx context.Context, phone string, excludeUserID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("telefono = ?", phone)
	if excludeUserID > 0 {
		query = query.Where("id_usuario <> ?", excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check student phone: %w", err)
	}
	return count > 0, nil
}

func (r *studentRepository) CarnetTaken(ctx context.Context, carnet string, excludeUserID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("carnet = ?", carnet)
	if excludeUserID > 0 {
		query = query.Where("id_usuario <> ?", excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check student carnet: %w", err)
	}
	return count > 0, nil
}
