package designer

import "errors"

var (
	// ErrDesignerNotFound возвращается, когда дизайнер не найден
	ErrDesignerNotFound = errors.New("designer.repository: designer not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("designer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("designer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("designer.repository: failed to scan row")

	// ErrInvalidSchedule возвращается, когда расписание в БД не проходит валидацию
	// при десериализации (битые JSON-поля, некорректные времена)
	ErrInvalidSchedule = errors.New("designer.repository: invalid schedule data")
)
