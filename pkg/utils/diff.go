package utils

import (
	"fmt"
	"reflect"
	"strings"
)

const maxDiffValueLen = 40

// DescribeChanges строит человекочитаемое описание разницы между двумя
// снимками одной сущности: по одному фрагменту "поле: было -> стало" на
// каждое изменённое поле. Сравнение поверхностное, по экспортируемым
// полям, имена берутся из json-тегов. Поле id пропускается.
func DescribeChanges(oldItem, newItem interface{}) string {
	oldVal := reflect.Indirect(reflect.ValueOf(oldItem))
	newVal := reflect.Indirect(reflect.ValueOf(newItem))

	if oldVal.Type() != newVal.Type() || oldVal.Kind() != reflect.Struct {
		return "Изменения не обнаружены"
	}

	var changes []string
	for i := 0; i < oldVal.NumField(); i++ {
		field := oldVal.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonFieldName(field)
		if name == "" || name == "id" {
			continue
		}
		ov := oldVal.Field(i).Interface()
		nv := newVal.Field(i).Interface()
		if reflect.DeepEqual(ov, nv) {
			continue
		}
		changes = append(changes, fmt.Sprintf("%s: %s -> %s", name, formatValue(ov), formatValue(nv)))
	}

	if len(changes) == 0 {
		return "Изменения не обнаружены"
	}
	return "Изменено: " + strings.Join(changes, ", ")
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func formatValue(v interface{}) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "<пусто>"
		}
		rv = rv.Elem()
		v = rv.Interface()
	}

	var s string
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, fmt.Sprintf("%v", rv.Index(i).Interface()))
		}
		s = "[" + strings.Join(parts, ", ") + "]"
	default:
		s = fmt.Sprintf("%v", v)
	}

	if s == "" {
		return "<пусто>"
	}
	if len([]rune(s)) > maxDiffValueLen {
		s = string([]rune(s)[:maxDiffValueLen]) + "…"
	}
	return s
}
