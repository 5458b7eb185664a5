package models

// CourseCategory defines the closed catalog of wellness course types
type CourseCategory string

const (
	CategorySport   CourseCategory = "Deporte Formativo"
	CategoryArts    CourseCategory = "Arte y Cultura"
	CategoryLecture CourseCategory = "Catedra Santiaguina"
)

// AllCourseCategories lists every valid category, in catalog order
var AllCourseCategories = []CourseCategory{CategorySport, CategoryArts, CategoryLecture}

// Valid reports whether the category belongs to the catalog
func (c CourseCategory) Valid() bool {
	for _, cat := range AllCourseCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// Weekday defines the day a session takes place on. Values are kept in
// Spanish to match the stored catalog.
type Weekday string

const (
	WeekdayLunes     Weekday = "lunes"
	WeekdayMartes    Weekday = "martes"
	WeekdayMiercoles Weekday = "miercoles"
	WeekdayJueves    Weekday = "jueves"
	WeekdayViernes   Weekday = "viernes"
	WeekdaySabado    Weekday = "sabado"
	WeekdayDomingo   Weekday = "domingo"
)

var weekdayOrder = map[Weekday]int{
	WeekdayLunes:     0,
	WeekdayMartes:    1,
	WeekdayMiercoles: 2,
	WeekdayJueves:    3,
	WeekdayViernes:   4,
	WeekdaySabado:    5,
	WeekdayDomingo:   6,
}

// Valid reports whether the weekday is one of the seven catalog values
func (d Weekday) Valid() bool {
	_, ok := weekdayOrder[d]
	return ok
}

// Order returns the position of the weekday within the week, starting at
// lunes. Unknown values sort last.
func (d Weekday) Order() int {
	if n, ok := weekdayOrder[d]; ok {
		return n
	}
	return len(weekdayOrder)
}

// Faculty defines the university faculty catalog
type Faculty string

const (
	FacultySalud       Faculty = "Salud"
	FacultyDerecho     Faculty = "Derecho"
	FacultyIngenieria  Faculty = "Ingenieria"
	FacultyEducacion   Faculty = "Educacion"
	FacultyCiencias    Faculty = "Ciencias Basicas"
	FacultyHumanidades Faculty = "Humanidades y Artes"
	FacultyEconomicas  Faculty = "Ciencias Economicas y Empresariales"
)

// AdminRole defines the administrative staff role catalog
type AdminRole string

const (
	AdminRoleAdmin          AdminRole = "admin"
	AdminRoleCoordinador    AdminRole = "coordinador"
	AdminRoleAdministrativo AdminRole = "administrativo"
)

// Valid reports whether the role is part of the catalog
func (r AdminRole) Valid() bool {
	switch r {
	case AdminRoleAdmin, AdminRoleCoordinador, AdminRoleAdministrativo:
		return true
	}
	return false
}

// Gender is an optional user demographic
type Gender string

const (
	GenderMasculino Gender = "masculino"
	GenderFemenino  Gender = "femenino"
	GenderOtro      Gender = "otro"
)

// Resolved role labels surfaced at login. Administrative users surface
// their catalog role instead.
const (
	RoleLabelStudent   = "Estudiante"
	RoleLabelUndefined = "Indefinido"
)
