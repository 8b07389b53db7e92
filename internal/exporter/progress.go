package exporter

// ProgressEvent 导出进度事件（用于 UI 展示）
type ProgressEvent struct {
	Percent int
	Stage   string
}

// 导出阶段文案，随进度事件透出
const (
	StagePrepare = "准备导出"
	StageRows    = "写入结果行"
	StageSummary = "写入汇总指标"
	StageDone    = "导出完成"
)

func reportProgress(progress func(ProgressEvent), percent int, stage string) {
	if progress == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	progress(ProgressEvent{
		Percent: percent,
		Stage:   stage,
	})
}
