package utils

import (
	"reflect"
)

// ApplyUpdates переносит в dst все непустые (не nil) поля из src.
// dst — указатель на сущность, src — указатель на DTO обновления, у
// которого все поля объявлены указателями. Поля сопоставляются по
// имени. Срезы и вложенные структуры заменяются целиком, без глубокого
// слияния. Возвращает true, если хотя бы одно поле было изменено.
func ApplyUpdates(dst interface{}, src interface{}) bool {
	dstVal := reflect.ValueOf(dst).Elem()
	srcVal := reflect.ValueOf(src).Elem()

	hasChanges := false

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		fieldName := srcVal.Type().Field(i).Name

		if srcField.Kind() == reflect.Ptr && srcField.IsNil() {
			continue
		}

		dstField := dstVal.FieldByName(fieldName)
		if !dstField.IsValid() || !dstField.CanSet() {
			continue
		}

		if dstField.Kind() == reflect.Ptr && srcField.Kind() == reflect.Ptr {
			val := srcField
			if srcField.Type() != dstField.Type() {
				// Например *string в DTO против *WorkMode в сущности.
				if !srcField.Type().Elem().ConvertibleTo(dstField.Type().Elem()) {
					continue
				}
				conv := reflect.New(dstField.Type().Elem())
				conv.Elem().Set(srcField.Elem().Convert(dstField.Type().Elem()))
				val = conv
			}
			if dstField.IsNil() || !reflect.DeepEqual(dstField.Elem().Interface(), val.Elem().Interface()) {
				dstField.Set(val)
				hasChanges = true
			}
			continue
		}

		if srcField.Kind() == reflect.Ptr {
			val := srcField.Elem()
			if val.Type() != dstField.Type() {
				if !val.Type().ConvertibleTo(dstField.Type()) {
					continue
				}
				val = val.Convert(dstField.Type())
			}
			if !reflect.DeepEqual(dstField.Interface(), val.Interface()) {
				dstField.Set(val)
				hasChanges = true
			}
		}
	}
	return hasChanges
}
