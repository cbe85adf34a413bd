package intent

// Intent names the classifier can resolve to
const (
	IntentSaludo          = "saludo"
	IntentDespedida       = "despedida"
	IntentReservarMesa    = "reservar_mesa"
	IntentCancelarReserva = "cancelar_reserva"
	IntentPreguntaMenu    = "pregunta_menu"
	IntentPreguntaHorario = "pregunta_horario"
	IntentConfirmacion    = "confirmacion"
	IntentNegacion        = "negacion"

	// IntentFallback is returned when no intent clears the similarity threshold
	IntentFallback = "fallback"
)

// Intent pairs a name with the example utterances that anchor it in embedding space
type Intent struct {
	Name     string
	Examples []string
}

// Catalog is the ordered intent set. Order matters: on a similarity tie the
// first declared intent wins.
type Catalog []Intent

// Result holds one classification outcome. Confidence is the best cosine
// similarity observed across all intents, in [-1, 1].
type Result struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// DefaultCatalog returns the built-in reservation-domain intents
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name: IntentSaludo,
			Examples: []string{
				"hola", "buenas", "buenos días", "buenas tardes", "buenas noches", "¿qué tal?",
			},
		},
		{
			Name: IntentDespedida,
			Examples: []string{
				"adiós", "hasta luego", "nos vemos", "chao", "bye",
			},
		},
		{
			Name: IntentReservarMesa,
			Examples: []string{
				"Quiero reservar una mesa",
				"Reservar para 2 personas mañana por la noche",
				"Necesito una mesa para 4 personas a las 20:00",
				"Me gustaría reservar una mesa el sábado a las 21",
				"Reserva para 3 el 10/10 a las 19:30",
			},
		},
		{
			Name: IntentCancelarReserva,
			Examples: []string{
				"Quiero cancelar mi reserva",
				"Cancelar mesa",
				"Anular reserva",
				"No podré ir a la reserva",
			},
		},
		{
			Name: IntentPreguntaMenu,
			Examples: []string{
				"¿Qué menú tienen?",
				"Mostrar menú",
				"¿Cuál es el menú del día?",
				"¿Tienen opciones vegetarianas?",
			},
		},
		{
			Name: IntentPreguntaHorario,
			Examples: []string{
				"¿Cuál es el horario?", "¿A qué hora abren?", "Horario de atención",
			},
		},
		{
			Name: IntentConfirmacion,
			Examples: []string{
				"sí", "si", "claro", "perfecto", "confirmar",
			},
		},
		{
			Name: IntentNegacion,
			Examples: []string{
				"no", "nop", "no gracias", "ahora no",
			},
		},
	}
}
