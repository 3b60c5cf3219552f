package models

import "errors"

var ErrInvalidJobRole = errors.New("invalid job role")

type JobRole string

const (
	RoleDataScientist           JobRole = "Data Scientist"
	RoleSoftwareEngineer        JobRole = "Software Engineer"
	RoleDevOpsEngineer          JobRole = "DevOps Engineer"
	RoleWebDeveloper            JobRole = "Web Developer"
	RoleMachineLearningEngineer JobRole = "Machine Learning Engineer"
	RoleDataAnalyst             JobRole = "Data Analyst"
	RoleCloudEngineer           JobRole = "Cloud Engineer"
	RoleFullStackDeveloper      JobRole = "Full Stack Developer"
)

// DefaultJobRole is selected for every new session.
const DefaultJobRole = RoleSoftwareEngineer

var jobRoles = []JobRole{
	RoleDataScientist,
	RoleSoftwareEngineer,
	RoleDevOpsEngineer,
	RoleWebDeveloper,
	RoleMachineLearningEngineer,
	RoleDataAnalyst,
	RoleCloudEngineer,
	RoleFullStackDeveloper,
}

// JobRoles returns the selectable roles in display order.
func JobRoles() []JobRole {
	out := make([]JobRole, len(jobRoles))
	copy(out, jobRoles)
	return out
}

func ParseJobRole(s string) (JobRole, error) {
	for _, role := range jobRoles {
		if string(role) == s {
			return role, nil
		}
	}
	return "", ErrInvalidJobRole
}
