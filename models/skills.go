package models

// Skill is one of the fixed services a student can offer on the platform.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// OtherSkillID marks the freeform "other services" entry. Selecting it
// requires a non-empty description before the wizard can advance.
const OtherSkillID = "otros-servicios"

// SkillCatalog is the fixed list of services offered on the platform.
var SkillCatalog = []Skill{
	{ID: "limpieza-hogar", Name: "Limpieza de hogar", Category: "hogar"},
	{ID: "limpieza-oficina", Name: "Limpieza de oficinas", Category: "hogar"},
	{ID: "planchado", Name: "Planchado de ropa", Category: "hogar"},
	{ID: "cocina", Name: "Cocina a domicilio", Category: "hogar"},
	{ID: "jardineria", Name: "Jardinería", Category: "hogar"},
	{ID: "clases-matematicas", Name: "Clases de matemáticas", Category: "clases"},
	{ID: "clases-fisica", Name: "Clases de física", Category: "clases"},
	{ID: "clases-quimica", Name: "Clases de química", Category: "clases"},
	{ID: "clases-ingles", Name: "Clases de inglés", Category: "clases"},
	{ID: "clases-musica", Name: "Clases de música", Category: "clases"},
	{ID: "soporte-tecnico", Name: "Soporte técnico", Category: "tecnologia"},
	{ID: "diseno-grafico", Name: "Diseño gráfico", Category: "tecnologia"},
	{ID: "redes-sociales", Name: "Manejo de redes sociales", Category: "tecnologia"},
	{ID: "reparacion-celulares", Name: "Reparación de celulares", Category: "tecnologia"},
	{ID: "mesero-eventos", Name: "Mesero para eventos", Category: "eventos"},
	{ID: "fotografia", Name: "Fotografía de eventos", Category: "eventos"},
	{ID: "animacion-fiestas", Name: "Animación de fiestas", Category: "eventos"},
	{ID: "cuidado-ninos", Name: "Cuidado de niños", Category: "cuidado"},
	{ID: "paseo-mascotas", Name: "Paseo de mascotas", Category: "cuidado"},
	{ID: "mandados", Name: "Mandados y trámites", Category: "mandados"},
	{ID: OtherSkillID, Name: "Otros servicios", Category: "otros"},
}

// SkillByID looks up a catalog entry; ok is false for unknown identifiers.
func SkillByID(id string) (Skill, bool) {
	for _, s := range SkillCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}
