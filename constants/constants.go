package constants

const (
	// public URL
	APP_NAME   = "Parque Vivos"
	PUBLIC_URL = "https://parquevivos.com.br"

	SESSION_NAME = "parques_session"

	MAX_TITLE_LENGTH = 100
	MAX_TAGS_LENGTH  = 100
	MAX_IMAGE_LENGTH = 50
)
