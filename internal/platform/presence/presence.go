package presence

import "errors"

// NotDefinedError marca una ausencia detectada por Required. La capa de
// arriba decide si eso es 404 o 401 según el punto de llamada.
type NotDefinedError struct {
	msg string
}

func (e *NotDefinedError) Error() string {
	if e.msg == "" {
		return "value is not defined"
	}
	return e.msg
}

// Required devuelve el valor si el puntero no es nil; si es nil devuelve
// NotDefinedError con el mensaje del caller. Todos los retrieve pasan por acá
// para que "no hay fila" tenga una sola forma.
func Required[T any](v *T, msg string) (T, error) {
	if v == nil {
		var zero T
		return zero, &NotDefinedError{msg: msg}
	}
	return *v, nil
}

func IsNotDefined(err error) bool {
	var nd *NotDefinedError
	return errors.As(err, &nd)
}
