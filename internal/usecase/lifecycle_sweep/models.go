package lifecycle_sweep

// Result итоги одного прохода lifecycle sweep
type Result struct {
	Checked int   // Сколько активных объявлений просмотрено
	Updated int   // У скольких изменился remaining_days
	Expired int   // Сколько переведено в expired
	Failed  int   // Сколько объявлений пропущено из-за ошибок
	Pruned  int64 // Сколько устаревших строк занятости удалено
}
