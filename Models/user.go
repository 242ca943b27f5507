package Models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleAdmin        = "admin"
	RoleCollaborator = "collaborator"
)

type User struct {
	gorm.Model
	DocID       string         `json:"doc_id" gorm:"index"`
	Email       string         `json:"email" gorm:"uniqueIndex;size:255"`
	Password    []byte         `json:"-"`
	Name        string         `json:"name"`
	Role        string         `json:"role" gorm:"default:collaborator"`
	Permissions datatypes.JSON `json:"permissions"`
}

// PermissionsJSON encodes a permission id list for storage.
func PermissionsJSON(perms []string) (datatypes.JSON, error) {
	if perms == nil {
		perms = []string{}
	}
	raw, err := json.Marshal(perms)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// PermissionList decodes the stored permission ids. A broken column value
// is treated as no permissions rather than an error.
func (u *User) PermissionList() []string {
	var perms []string
	if len(u.Permissions) == 0 {
		return perms
	}
	if err := json.Unmarshal(u.Permissions, &perms); err != nil {
		return nil
	}
	return perms
}

func (u *User) HasPermission(permission string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.PermissionList() {
		if p == permission || p == "all" {
			return true
		}
	}
	return false
}
