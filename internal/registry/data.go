package registry

// bundledSkills is the built-in skill table. Declaration order is the
// matcher's iteration order; priorities rank competing recommendations.
//
// Every concept carries all five language keys. An empty list means the
// concept has no usable keywords in that language, never that the language
// was forgotten.
var bundledSkills = []Skill{
	{
		Name:        "systematic-debugging",
		Priority:    25,
		Description: "Reproduce first, then bisect: a disciplined workflow for tracking a failure to its root cause before touching the fix.",
		Concepts: []Concept{
			{
				Name: "error",
				Keywords: map[Language][]string{
					English:  {"error", "exception", "crash", "broken", "not working"},
					Korean:   {"에러", "오류", "예외", "충돌"},
					Japanese: {"エラー", "例外", "クラッシュ", "動かない"},
					Chinese:  {"错误", "异常", "崩溃", "报错"},
					Spanish:  {"error", "excepción", "no funciona"},
				},
			},
			{
				Name: "fix",
				Keywords: map[Language][]string{
					English:  {"fix", "debug", "solve", "resolve", "troubleshoot"},
					Korean:   {"수정", "해결", "디버그", "고쳐"},
					Japanese: {"修正", "デバッグ", "解決", "直して"},
					Chinese:  {"修复", "调试", "解决"},
					Spanish:  {"arreglar", "depurar", "solucionar", "corregir"},
				},
			},
			{
				Name: "bug",
				Keywords: map[Language][]string{
					English:  {"bug", "defect", "glitch", "fault"},
					Korean:   {"버그", "결함"},
					Japanese: {"バグ", "不具合"},
					Chinese:  {"缺陷"},
					Spanish:  {"fallo", "defecto"},
				},
			},
		},
	},
	{
		Name:        "test-driven-development",
		Priority:    22,
		Description: "Write the failing test before the code: red, green, refactor, with edge cases captured as executable examples.",
		Concepts: []Concept{
			{
				Name: "test",
				Keywords: map[Language][]string{
					English:  {"test", "testing", "unit test", "test case"},
					Korean:   {"테스트", "시험"},
					Japanese: {"テスト"},
					Chinese:  {"测试"},
					Spanish:  {"prueba", "pruebas"},
				},
			},
			{
				Name: "tdd",
				Keywords: map[Language][]string{
					English:  {"tdd", "test driven", "red green"},
					Korean:   {},
					Japanese: {"テスト駆動"},
					Chinese:  {"测试驱动"},
					Spanish:  {"desarrollo guiado"},
				},
			},
			{
				Name: "coverage",
				Keywords: map[Language][]string{
					English:  {"coverage", "edge case", "regression"},
					Korean:   {"커버리지"},
					Japanese: {"カバレッジ"},
					Chinese:  {"覆盖率"},
					Spanish:  {"cobertura"},
				},
			},
		},
	},
	{
		Name:        "code-review",
		Priority:    20,
		Description: "Review changes for correctness, clarity, and blast radius, and phrase findings as actionable requests.",
		Concepts: []Concept{
			{
				Name: "review",
				Keywords: map[Language][]string{
					English:  {"review", "pull request", "code review"},
					Korean:   {"리뷰", "검토"},
					Japanese: {"レビュー"},
					Chinese:  {"审查", "评审"},
					Spanish:  {"revisar", "revisión"},
				},
			},
			{
				Name: "quality",
				Keywords: map[Language][]string{
					English:  {"quality", "readability", "maintainability"},
					Korean:   {"품질"},
					Japanese: {"品質"},
					Chinese:  {"质量"},
					Spanish:  {"calidad"},
				},
			},
			{
				Name: "feedback",
				Keywords: map[Language][]string{
					English:  {"feedback", "critique"},
					Korean:   {"피드백"},
					Japanese: {"フィードバック"},
					Chinese:  {"反馈"},
					Spanish:  {"comentarios"},
				},
			},
		},
	},
	{
		Name:        "refactoring-patterns",
		Priority:    18,
		Description: "Restructure code in small, behavior-preserving steps backed by tests, instead of big-bang rewrites.",
		Concepts: []Concept{
			{
				Name: "refactor",
				Keywords: map[Language][]string{
					English:  {"refactor", "refactoring", "rewrite", "restructure"},
					Korean:   {"리팩토링", "리팩터링"},
					Japanese: {"リファクタリング"},
					Chinese:  {"重构"},
					Spanish:  {"refactorizar"},
				},
			},
			{
				Name: "cleanup",
				Keywords: map[Language][]string{
					English:  {"cleanup", "clean up", "technical debt", "simplify"},
					Korean:   {"정리"},
					Japanese: {"整理"},
					Chinese:  {"清理", "技术债"},
					Spanish:  {"limpiar", "simplificar"},
				},
			},
			{
				Name: "structure",
				Keywords: map[Language][]string{
					English:  {"code structure", "modularize", "decouple"},
					Korean:   {"구조"},
					Japanese: {"構造"},
					Chinese:  {"结构"},
					Spanish:  {"estructura"},
				},
			},
		},
	},
	{
		Name:        "performance-tuning",
		Priority:    15,
		Description: "Measure before optimizing: profile, find the dominant cost, and fix the bottleneck the numbers point at.",
		Concepts: []Concept{
			{
				Name: "performance",
				Keywords: map[Language][]string{
					English:  {"performance", "slow", "sluggish", "latency"},
					Korean:   {"성능", "느려", "느림"},
					Japanese: {"パフォーマンス", "遅い"},
					Chinese:  {"性能", "太慢", "卡顿"},
					Spanish:  {"rendimiento", "lento"},
				},
			},
			{
				Name: "optimize",
				Keywords: map[Language][]string{
					English:  {"optimize", "optimization", "speed up"},
					Korean:   {"최적화"},
					Japanese: {"最適化"},
					Chinese:  {"优化"},
					Spanish:  {"optimizar"},
				},
			},
			{
				Name: "resource",
				Keywords: map[Language][]string{
					English:  {"memory", "cpu", "leak", "bottleneck"},
					Korean:   {"메모리", "병목"},
					Japanese: {"メモリ", "ボトルネック"},
					Chinese:  {"内存", "瓶颈"},
					Spanish:  {"memoria", "cuello de botella"},
				},
			},
		},
	},
	{
		Name:        "api-design",
		Priority:    12,
		Description: "Design interfaces from the caller's point of view: small surface, explicit contracts, versioning from day one.",
		Concepts: []Concept{
			{
				Name: "api",
				Keywords: map[Language][]string{
					English:  {"api", "endpoint", "rest", "graphql"},
					Korean:   {"엔드포인트"},
					Japanese: {"エンドポイント"},
					Chinese:  {"接口"},
					Spanish:  {"servicio web"},
				},
			},
			{
				Name: "interface",
				Keywords: map[Language][]string{
					English:  {"interface", "contract", "schema"},
					Korean:   {"인터페이스"},
					Japanese: {"インターフェース"},
					Chinese:  {"规范"},
					Spanish:  {"interfaz", "contrato"},
				},
			},
			{
				Name: "versioning",
				Keywords: map[Language][]string{
					English:  {"versioning", "backwards compatible", "deprecation"},
					Korean:   {"버전 관리"},
					Japanese: {"バージョン管理"},
					Chinese:  {"版本管理"},
					Spanish:  {"versionado"},
				},
			},
		},
	},
	{
		Name:        "documentation-first",
		Priority:    12,
		Description: "Write the README and doc comments before the implementation settles, so the design is explained while it is still fresh.",
		Concepts: []Concept{
			{
				Name: "docs",
				Keywords: map[Language][]string{
					English:  {"documentation", "docs", "readme", "docstring"},
					Korean:   {"문서", "주석"},
					Japanese: {"ドキュメント", "文書"},
					Chinese:  {"文档", "注释"},
					Spanish:  {"documentación", "documentar"},
				},
			},
			{
				Name: "explain",
				Keywords: map[Language][]string{
					English:  {"explain", "describe", "clarify"},
					Korean:   {"설명"},
					Japanese: {"説明"},
					Chinese:  {"解释", "说明"},
					Spanish:  {"explicar", "aclarar"},
				},
			},
		},
	},
	{
		Name:        "dependency-auditing",
		Priority:    10,
		Description: "Keep third-party dependencies current and accounted for: audit versions, changelogs, and known vulnerabilities before upgrading.",
		Concepts: []Concept{
			{
				Name: "dependency",
				Keywords: map[Language][]string{
					English:  {"dependency", "dependencies", "package", "library"},
					Korean:   {"의존성", "패키지"},
					Japanese: {"依存関係", "パッケージ"},
					Chinese:  {"依赖"},
					Spanish:  {"dependencia", "librería"},
				},
			},
			{
				Name: "upgrade",
				Keywords: map[Language][]string{
					English:  {"upgrade", "update", "bump version", "outdated"},
					Korean:   {"업그레이드", "업데이트"},
					Japanese: {"アップグレード", "更新"},
					Chinese:  {"升级", "更新"},
					Spanish:  {"actualizar"},
				},
			},
			{
				Name: "vulnerability",
				Keywords: map[Language][]string{
					English:  {"vulnerability", "cve", "security audit"},
					Korean:   {"취약점"},
					Japanese: {"脆弱性"},
					Chinese:  {"漏洞"},
					Spanish:  {"vulnerabilidad"},
				},
			},
		},
	},
}
