package respond

import (
	"encoding/json"
	"net/http"
)

const internalErrorBody = `{"error":"internal error"}` + "\n"

// JSON сериализует data до записи заголовков: если кодирование не удалось,
// клиент получает 500, а ошибка возвращается вызывающему
func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) error {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(internalErrorBody))
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(append(body, '\n'))
	return err
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) error {
	return JSON(w, r, code, map[string]string{"error": message})
}

func Status(w http.ResponseWriter, r *http.Request, status string) error {
	return JSON(w, r, http.StatusOK, map[string]string{"status": status})
}
