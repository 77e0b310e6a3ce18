package services

// User-facing outcome messages. Every mutation builds its own result from
// these; there is no shared response state anywhere in the process.

const (
	MsgPersonalInfoUpdated = "Фотография была успешно обновлена"
	MsgGeoInfoUpdated      = "Местоположение было успешно обновлено"
	MsgPasswordUpdated     = "Новый пароль был успешно установлен"

	MsgAchievementCreated = "Достижение было успешно опубликовано в вашем портфолио"
	MsgAchievementDeleted = "Достижение было удалено с вашего аккаунта"

	MsgProjectCreated = "Проект был успешно добавлен"
	MsgProjectUpdated = "Проект был успешно обновлён"
	MsgProjectLiked   = "Вам понравился этот проект"
	MsgProjectDeleted = "Проект был удалён с вашего аккаунта"

	MsgMaterialCreated       = "Материал был успешно создан"
	MsgMaterialRatingUpdated = "Оценка материала была обновлена"
	MsgResourceAdded         = "Ресурс был успешно добавлен к материалу"
	MsgConspectCreated       = "Конспект был успешно опубликован"
	MsgConspectLiked         = "Вам понравился этот конспект"
	MsgConspectDeleted       = "Конспект был удалён"

	MsgRoomCreated     = "Комната была успешно создана"
	MsgRoomJoined      = "Вы присоединились к комнате"
	MsgRoomRoleUpdated = "Ваша роль в комнате была обновлена"
	MsgRoomLeft        = "Вы покинули комнату"
	MsgRoomInfoUpdated = "Информация о комнате была обновлена"
	MsgTaskCreated     = "Задача была успешно добавлена"
	MsgTaskUpdated     = "Задача была обновлена"
	MsgTaskDeleted     = "Задача была удалена"

	MsgLectureCreated     = "Лекция была успешно создана"
	MsgLectureInfoUpdated = "Информация о лекции была обновлена"
	MsgQuestionCreated    = "Вопрос был успешно опубликован"
	MsgQuestionReplied    = "Ответ на вопрос был сохранён"
	MsgQuestionDeleted    = "Вопрос был удалён"
	MsgDetailCreated      = "Деталь лекции была добавлена"
	MsgDetailRated        = "Оценка детали была сохранена"
	MsgDetailDeleted      = "Деталь лекции была удалена"

	MsgAreaCreated        = "Область была успешно создана"
	MsgAreaFacultyUpdated = "Факультет области был обновлён"
	MsgLocationCreated    = "Локация была успешно добавлена"
	MsgLocationUpdated    = "Локация была обновлена"
	MsgLocationLiked      = "Вам понравилась эта локация"
	MsgLocationDeleted    = "Локация была удалена"
	MsgFactOffered        = "Факт был успешно предложен"

	MsgIdeaCreated     = "Идея была успешно опубликована"
	MsgIdeaInfoUpdated = "Информация об идее была обновлена"
	MsgThoughtCreated  = "Мысль была успешно добавлена"
	MsgThoughtRated    = "Оценка мысли была сохранена"
	MsgThoughtDeleted  = "Мысль была удалена"
	MsgQuotePublished  = "Цитата была успешно опубликована"
)

// MutationResult is what every mutation hands back to the transport layer.
// ShortID is set when the operation minted a new document or entry, so the
// client can address it afterwards.
type MutationResult struct {
	Message string `json:"message"`
	ShortID string `json:"shortid,omitempty"`
}
