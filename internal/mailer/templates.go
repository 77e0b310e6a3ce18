package mailer

import "fmt"

// Letter templates sent on registration and password change.

func RegistrationEmail(name string) (subject, body string) {
	subject = "Создание аккаунта на NSTU WEB"
	body = fmt.Sprintf(`
        <div>
            <h1>Вы успешно прошли регистрацию в NSTU WEB, %s!</h1>
            <p>Заполняйте данные в личном кабинете и наслаждайтесь платформой.</p>
        </div>
    `, name)
	return subject, body
}

func PasswordChangeEmail(name string) (subject, body string) {
	subject = "Обновлён пароль в NSTU WEB | Безопасность"
	body = fmt.Sprintf(`
        <div>
            <h1>Уважаемый пользователь %s, ваш пароль к аккаунту на NSTU WEB был обновлён</h1>
            <p>Если это были не вы, то обратитесь за сбросом пароля в деканат вашего факультета.</p>
        </div>
    `, name)
	return subject, body
}
