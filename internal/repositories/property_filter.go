package repositories

import (
	"fmt"

	"villa_backend/internal/models"
)

// PropertyFilter - набор необязательных, независимых критериев поиска объектов.
// Отсутствующий критерий не дает ни фрагмента, ни параметра.
type PropertyFilter struct {
	Type     models.PropertyType
	Status   models.PropertyStatus
	MinPrice *float64
	MaxPrice *float64
	Location string
}

// Build превращает заданные критерии в список SQL-фрагментов вида
// "p.<col> <op> $n" и параллельный список связанных параметров.
//
// Правила:
//   - нумерация плейсхолдеров непрерывна начиная со start, какие бы
//     критерии ни присутствовали;
//   - значения никогда не конкатенируются в текст фрагмента, только
//     через плейсхолдер;
//   - location ищется подстрокой без учета регистра, маркеры '%'
//     добавляет сам билдер, не вызывающая сторона.
func (f PropertyFilter) Build(start int) ([]string, []any) {
	var fragments []string
	var args []any

	n := start

	if f.Type != "" {
		fragments = append(fragments, fmt.Sprintf("p.type = $%d", n))
		args = append(args, string(f.Type))
		n++
	}

	if f.Status != "" {
		fragments = append(fragments, fmt.Sprintf("p.status = $%d", n))
		args = append(args, string(f.Status))
		n++
	}

	if f.MinPrice != nil {
		fragments = append(fragments, fmt.Sprintf("p.price >= $%d", n))
		args = append(args, *f.MinPrice)
		n++
	}

	if f.MaxPrice != nil {
		fragments = append(fragments, fmt.Sprintf("p.price <= $%d", n))
		args = append(args, *f.MaxPrice)
		n++
	}

	if f.Location != "" {
		fragments = append(fragments, fmt.Sprintf("p.location ILIKE $%d", n))
		args = append(args, "%"+f.Location+"%")
		n++
	}

	return fragments, args
}

// IsEmpty сообщает, задан ли хоть один критерий
func (f PropertyFilter) IsEmpty() bool {
	return f.Type == "" && f.Status == "" && f.MinPrice == nil &&
		f.MaxPrice == nil && f.Location == ""
}
