package i18n

// The ru-RU catalog mirrors the upstream web client, which ships Russian
// interface text. Missing keys fall back to en-US at format time.
var ruRUCatalog = &Catalog{
	locale: "ru-RU",
	messages: map[Code]string{
		// Transport errors
		CodeUnknown:            "Произошла непредвиденная ошибка",
		CodeNetworkUnreachable: "Не удалось связаться с сервисом библиотеки",
		CodeRemoteRejected:     "Сервис библиотеки отклонил запрос",

		// Lookup errors
		CodeBookNotFound:    "Книга не найдена",
		CodeGenreNotFound:   "Жанр не найден",
		CodePageNotFound:    "На запрошенной странице книги не найдены",
		CodeSearchNoMatches: "Книги с таким названием не найдены",
		CodeFilterNoMatches: "Книги по заданным условиям не найдены",
		CodeRouteNotFound:   "Страница не найдена",

		// Authentication errors
		CodeAuthRejected:   "Не удалось войти: проверьте почту и пароль",
		CodeAuthRequired:   "Войдите, чтобы продолжить",
		CodeAccessDenied:   "У вас нет прав для просмотра этой страницы",
		CodeTokenMalformed: "Токен сеанса повреждён",

		// Validation errors
		CodeValidationUsername:      "От 4 до 24 символов. Должно начинаться с буквы. Допускаются буквы, цифры, подчеркивания, дефисы",
		CodeValidationEmail:         "Пожалуйста, введите действительный адрес электронной почты",
		CodeValidationPassword:      "От 8 до 24 символов. Должно содержать прописные и строчные буквы, цифры и специальные символы ! @ # $ %",
		CodeValidationPasswordMatch: "Пароли не совпадают",
		CodeValidationFieldsEmpty:   "Поля не могут быть пустыми",
		CodeValidationBookName:      "Название книги обязательно",
		CodeValidationBookISBN:      "ISBN обязателен",
		CodeValidationBookGenre:     "Жанр обязателен",
		CodeValidationBookCount:     "Количество экземпляров должно быть не меньше 1",
		CodeValidationBookAuthors:   "Выберите хотя бы одного автора",

		// Storage errors
		CodeNotFound: "Запрошенный ресурс не найден",

		// Screen labels
		UIAppTitle:        "Книжная библиотека",
		UISignInTitle:     "Вход",
		UIRegisterTitle:   "Регистрация",
		UIRegisterSuccess: "Вы успешно зарегистрированы!",
		UICatalogTitle:    "Список книг",
		UICatalogEmpty:    "Книг пока нет",
		UICatalogPage:     "Страница {{.Page}} из {{.Total}}",
		UIMyBooks:         "Мои книги",
		UIArchive:         "Архив",
		UINoActiveBooks:   "Пока что у вас нет активных книг",
		UINoArchivedBooks: "У вас нет книг в архиве",
		UIAuthor:          "Автор",
		UIGenre:           "Жанр",
		UIDescription:     "Описание",
		UIDateTaken:       "Дата взятия",
		UIReturnDate:      "Дата возвращения",
		UILoanStatus:      "Статус",
		UILoanReturned:    "возвращена",
		UILoanNotReturned: "не возвращена",
		UITakeBook:        "Взять книгу",
		UIReturnBook:      "Вернуть книгу",
		UIBookTaken:       "Книга у вас до {{.ReturnDate}}",
		UIBookReturned:    "Книга возвращена",
		UIEditorTitleNew:  "Добавление новой книги",
		UIEditorTitleEdit: "Редактирование книги",
		UIBookAdded:       "Книга успешно добавлена",
		UIBookUpdated:     "Книга успешно обновлена",
		UIBookDeleted:     "Книга удалена",
		UINoChanges:       "Нет изменений для сохранения",
		UIStockInStock:    "В наличии",
		UIStockLastCopy:   "Последний экземпляр",
		UIStockOutOfStock: "Нет в наличии",
		UISignedOut:       "Вы вышли из учетной записи",
		UISignedInAs:      "Вы вошли как {{.Name}}",
	},
}
