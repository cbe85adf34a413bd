package dialog

import (
	"fmt"
	"math/rand"

	"reserva_bot/constant"
	"reserva_bot/entity"
)

// Canned replies. Greeting and farewell pick uniformly at random; everything
// else is a single deterministic template.
var (
	greetingReplies = []string{
		"¡Hola! ¿Deseas reservar una mesa?",
		"¡Buenas! ¿En qué puedo ayudarte hoy?",
	}
	farewellReplies = []string{
		"¡Hasta luego!",
		"Que tengas un buen día.",
	}
)

const (
	replyAskNumPersonas = "¿Para cuántas personas es la reserva?"
	replyAskDate        = "¿Para qué fecha te gustaría hacer la reserva?"
	replyAskTime        = "¿A qué hora te gustaría reservar la mesa?"

	replyConfirmedTemplate = "¡Reserva confirmada para %d personas el %s a las %s! ¿Necesitas algo más?"
	replyCancelledTemplate = "Tu reserva para %d personas el %s a las %s ha sido cancelada."
	replyNothingToCancel   = "No tienes reservas para cancelar."

	replyMenu     = "Nuestro menú incluye opciones vegetarianas y sin gluten. ¿Quieres que te envíe el menú completo por email?"
	replySchedule = "Nuestro horario de atención es de lunes a domingo de 12:00 a 23:00."

	replyConfirmation = "¡Perfecto! ¿En qué más puedo ayudarte?"
	replyNegation     = "De acuerdo. Si necesitas algo más, dímelo."

	replyFallback = "Lo siento, no he entendido tu mensaje. ¿Podrías reformularlo?"
	replyDefault  = "Lo siento, no he entendido tu solicitud. ¿Podrías aclararlo?"

	// Store failures surface in the same conversational register, never
	// raw diagnostics
	replyStoreTrouble = "Vaya, no he podido guardar tu reserva. ¿Lo intentamos de nuevo?"
)

// promptForMissingSlot asks for the first missing slot in the fixed order:
// party size, then date, then time
func promptForMissingSlot(slots *Slots) string {
	if slots.NumPersonas == constant.EmptyString {
		return replyAskNumPersonas
	}
	if slots.Date == constant.EmptyString {
		return replyAskDate
	}
	return replyAskTime
}

func confirmedReply(reservation *entity.Reservation) string {
	return fmt.Sprintf(replyConfirmedTemplate, reservation.NumPersonas, reservation.Date, reservation.Time)
}

func cancelledReply(reservation *entity.Reservation) string {
	return fmt.Sprintf(replyCancelledTemplate, reservation.NumPersonas, reservation.Date, reservation.Time)
}

func chooseReply(replies []string) string {
	return replies[rand.Intn(len(replies))]
}
