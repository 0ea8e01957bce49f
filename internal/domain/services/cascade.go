package services

import (
	"uztk-http-service/internal/domain/models"

	"gorm.io/gorm"
)

// Cascade deletion is application logic, not ORM or database magic: each
// helper removes the dependents of a record before the record itself, and the
// whole chain runs inside the caller's transaction. The helpers mirror the
// ownership edges of the schema.

// deleteCameraCascade removes a camera together with its join-table rows.
func deleteCameraCascade(tx *gorm.DB, cameraID uint) error {
	if err := tx.Exec("DELETE FROM camera_link_cameras WHERE camera_id = ?", cameraID).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM user_cameras WHERE camera_id = ?", cameraID).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Camera{}, cameraID).Error
}

// deleteTourniquetCascade removes a lock together with its coverage links and
// both time-sheet kinds.
func deleteTourniquetCascade(tx *gorm.DB, lockID uint) error {
	var linkIDs []uint
	if err := tx.Model(&models.CameraToTourniquetLock{}).
		Where("tourniquet_id = ?", lockID).
		Pluck("id", &linkIDs).Error; err != nil {
		return err
	}
	for _, linkID := range linkIDs {
		if err := deleteLinkCascade(tx, linkID); err != nil {
			return err
		}
	}

	if err := tx.Where("tourniquet_id = ?", lockID).Delete(&models.TourniquetTimeSheet{}).Error; err != nil {
		return err
	}
	if err := tx.Where("tourniquet_id = ?", lockID).Delete(&models.EmployeeGroupTimeSheet{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.TourniquetLock{}, lockID).Error
}

// deleteLinkCascade removes a coverage link and its camera-set rows.
func deleteLinkCascade(tx *gorm.DB, linkID uint) error {
	if err := tx.Exec("DELETE FROM camera_link_cameras WHERE camera_to_tourniquet_lock_id = ?", linkID).Error; err != nil {
		return err
	}
	return tx.Delete(&models.CameraToTourniquetLock{}, linkID).Error
}

// deleteEmployeeCascade removes an employee, their personal time sheets and
// their group memberships.
func deleteEmployeeCascade(tx *gorm.DB, employeeID uint) error {
	if err := tx.Where("employee_id = ?", employeeID).Delete(&models.TourniquetTimeSheet{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM employee_group_members WHERE employee_id = ?", employeeID).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Employee{}, employeeID).Error
}

// deleteEmployeeGroupCascade removes a group, its time sheets and its
// membership rows.
func deleteEmployeeGroupCascade(tx *gorm.DB, groupID uint) error {
	if err := tx.Where("employee_group_id = ?", groupID).Delete(&models.EmployeeGroupTimeSheet{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM employee_group_members WHERE employee_group_id = ?", groupID).Error; err != nil {
		return err
	}
	return tx.Delete(&models.EmployeeGroup{}, groupID).Error
}

// deleteLocationCascade removes a location and every camera and lock
// installed there, transitively.
func deleteLocationCascade(tx *gorm.DB, locationID uint) error {
	var cameraIDs []uint
	if err := tx.Model(&models.Camera{}).
		Where("location_id = ?", locationID).
		Pluck("id", &cameraIDs).Error; err != nil {
		return err
	}
	for _, cameraID := range cameraIDs {
		if err := deleteCameraCascade(tx, cameraID); err != nil {
			return err
		}
	}

	var lockIDs []uint
	if err := tx.Model(&models.TourniquetLock{}).
		Where("location_id = ?", locationID).
		Pluck("id", &lockIDs).Error; err != nil {
		return err
	}
	for _, lockID := range lockIDs {
		if err := deleteTourniquetCascade(tx, lockID); err != nil {
			return err
		}
	}

	return tx.Delete(&models.Location{}, locationID).Error
}
