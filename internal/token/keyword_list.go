package token

const kw = FlagIdentifier | FlagKeyword

// Reserved keywords. Statement starters carry FlagSpecial; operator words carry
// their precedence.
const (
	KwAdd              = kw | 1
	KwAll              = kw | 2
	KwAlter            = kw | FlagSpecial | 3
	KwAnd              = kw | Kind(PrecAnd)<<precShift | 4
	KwAny              = kw | 5
	KwAs               = kw | 6
	KwAsc              = kw | 7
	KwBackup           = kw | FlagSpecial | 8
	KwBegin            = kw | FlagSpecial | 9
	KwBetween          = kw | Kind(PrecComparison)<<precShift | 10
	KwBreak            = kw | FlagSpecial | 11
	KwBrowse           = kw | 12
	KwBulk             = kw | 13
	KwBy               = kw | 14
	KwCascade          = kw | 15
	KwCase             = kw | 16
	KwCheck            = kw | 17
	KwCheckpoint       = kw | 18
	KwClose            = kw | FlagSpecial | 19
	KwClustered        = kw | 20
	KwCoalesce         = kw | 21
	KwCollate          = kw | Kind(PrecBitNot)<<precShift | 22
	KwColumn           = kw | 23
	KwCommit           = kw | FlagSpecial | 24
	KwCompute          = kw | 25
	KwConstraint       = kw | 26
	KwContains         = kw | 27
	KwContinue         = kw | FlagSpecial | 28
	KwConvert          = kw | 29
	KwCreate           = kw | FlagSpecial | 30
	KwCross            = kw | 31
	KwCurrent          = kw | 32
	KwCurrentDate      = kw | 33
	KwCurrentTime      = kw | 34
	KwCurrentTimestamp = kw | 35
	KwCurrentUser      = kw | 36
	KwCursor           = kw | 37
	KwDatabase         = kw | 38
	KwDeallocate       = kw | FlagSpecial | 39
	KwDeclare          = kw | FlagSpecial | 40
	KwDefault          = kw | 41
	KwDelete           = kw | FlagSpecial | 42
	KwDeny             = kw | FlagSpecial | 43
	KwDesc             = kw | 44
	KwDistinct         = kw | 45
	KwDrop             = kw | FlagSpecial | 46
	KwElse             = kw | 47
	KwEnd              = kw | 48
	KwEscape           = kw | 49
	KwExcept           = kw | Kind(PrecExcept)<<precShift | 50
	KwExec             = kw | FlagSpecial | 51
	KwExecute          = kw | FlagSpecial | 52
	KwExists           = kw | 53
	KwExit             = kw | 54
	KwFetch            = kw | FlagSpecial | 55
	KwFile             = kw | 56
	KwFor              = kw | Kind(PrecOrder)<<precShift | 57
	KwForeign          = kw | 58
	KwFrom             = kw | 59
	KwFull             = kw | 60
	KwFunction         = kw | 61
	KwGoto             = kw | FlagSpecial | 62
	KwGrant            = kw | FlagSpecial | 63
	KwGroup            = kw | 64
	KwHaving           = kw | 65
	KwIdentity         = kw | 66
	KwIf               = kw | FlagSpecial | 67
	KwIn               = kw | Kind(PrecComparison)<<precShift | 68
	KwIndex            = kw | 69
	KwInner            = kw | 70
	KwInsert           = kw | FlagSpecial | 71
	KwIntersect        = kw | Kind(PrecIntersect)<<precShift | 72
	KwInto             = kw | 73
	KwIs               = kw | Kind(PrecComparison)<<precShift | 74
	KwJoin             = kw | 75
	KwKey              = kw | 76
	KwKill             = kw | FlagSpecial | 77
	KwLeft             = kw | 78
	KwLike             = kw | Kind(PrecComparison)<<precShift | 79
	KwMerge            = kw | FlagSpecial | 80
	KwNot              = kw | Kind(PrecNot)<<precShift | 81
	KwNull             = kw | 82
	KwNullif           = kw | 83
	KwOf               = kw | 84
	KwOff              = kw | 85
	KwOn               = kw | 86
	KwOpen             = kw | FlagSpecial | 87
	KwOption           = kw | 88
	KwOr               = kw | Kind(PrecOr)<<precShift | 89
	KwOrder            = kw | Kind(PrecOrder)<<precShift | 90
	KwOuter            = kw | 91
	KwOver             = kw | 92
	KwPercent          = kw | 93
	KwPivot            = kw | 94
	KwPrimary          = kw | 95
	KwPrint            = kw | FlagSpecial | 96
	KwProc             = kw | 97
	KwProcedure        = kw | 98
	KwRaiserror        = kw | FlagSpecial | 99
	KwRead             = kw | 100
	KwReferences       = kw | 101
	KwReturn           = kw | FlagSpecial | 102
	KwRevert           = kw | FlagSpecial | 103
	KwRevoke           = kw | FlagSpecial | 104
	KwRight            = kw | 105
	KwRollback         = kw | FlagSpecial | 106
	KwRowcount         = kw | 107
	KwSave             = kw | FlagSpecial | 108
	KwSchema           = kw | 109
	KwSelect           = kw | FlagSpecial | 110
	KwSessionUser      = kw | 111
	KwSet              = kw | FlagSpecial | 112
	KwSome             = kw | 113
	KwSystemUser       = kw | 114
	KwTable            = kw | 115
	KwThen             = kw | 116
	KwTo               = kw | 117
	KwTop              = kw | 118
	KwTran             = kw | 119
	KwTransaction      = kw | 120
	KwTrigger          = kw | 121
	KwTruncate         = kw | FlagSpecial | 122
	KwTryConvert       = kw | 123
	KwUnion            = kw | Kind(PrecUnion)<<precShift | 124
	KwUnique           = kw | 125
	KwUnpivot          = kw | 126
	KwUpdate           = kw | FlagSpecial | 127
	KwUse              = kw | FlagSpecial | 128
	KwUser             = kw | 129
	KwValues           = kw | 130
	KwView             = kw | 131
	KwWaitfor          = kw | FlagSpecial | 132
	KwWhen             = kw | 133
	KwWhere            = kw | 134
	KwWhile            = kw | FlagSpecial | 135
	KwWith             = kw | FlagSpecial | 136
)

var keywordList = []struct {
	text string
	kind Kind
}{
	{"ADD", KwAdd},
	{"ALL", KwAll},
	{"ALTER", KwAlter},
	{"AND", KwAnd},
	{"ANY", KwAny},
	{"AS", KwAs},
	{"ASC", KwAsc},
	{"BACKUP", KwBackup},
	{"BEGIN", KwBegin},
	{"BETWEEN", KwBetween},
	{"BREAK", KwBreak},
	{"BROWSE", KwBrowse},
	{"BULK", KwBulk},
	{"BY", KwBy},
	{"CASCADE", KwCascade},
	{"CASE", KwCase},
	{"CHECK", KwCheck},
	{"CHECKPOINT", KwCheckpoint},
	{"CLOSE", KwClose},
	{"CLUSTERED", KwClustered},
	{"COALESCE", KwCoalesce},
	{"COLLATE", KwCollate},
	{"COLUMN", KwColumn},
	{"COMMIT", KwCommit},
	{"COMPUTE", KwCompute},
	{"CONSTRAINT", KwConstraint},
	{"CONTAINS", KwContains},
	{"CONTINUE", KwContinue},
	{"CONVERT", KwConvert},
	{"CREATE", KwCreate},
	{"CROSS", KwCross},
	{"CURRENT", KwCurrent},
	{"CURRENT_DATE", KwCurrentDate},
	{"CURRENT_TIME", KwCurrentTime},
	{"CURRENT_TIMESTAMP", KwCurrentTimestamp},
	{"CURRENT_USER", KwCurrentUser},
	{"CURSOR", KwCursor},
	{"DATABASE", KwDatabase},
	{"DEALLOCATE", KwDeallocate},
	{"DECLARE", KwDeclare},
	{"DEFAULT", KwDefault},
	{"DELETE", KwDelete},
	{"DENY", KwDeny},
	{"DESC", KwDesc},
	{"DISTINCT", KwDistinct},
	{"DROP", KwDrop},
	{"ELSE", KwElse},
	{"END", KwEnd},
	{"ESCAPE", KwEscape},
	{"EXCEPT", KwExcept},
	{"EXEC", KwExec},
	{"EXECUTE", KwExecute},
	{"EXISTS", KwExists},
	{"EXIT", KwExit},
	{"FETCH", KwFetch},
	{"FILE", KwFile},
	{"FOR", KwFor},
	{"FOREIGN", KwForeign},
	{"FROM", KwFrom},
	{"FULL", KwFull},
	{"FUNCTION", KwFunction},
	{"GOTO", KwGoto},
	{"GRANT", KwGrant},
	{"GROUP", KwGroup},
	{"HAVING", KwHaving},
	{"IDENTITY", KwIdentity},
	{"IF", KwIf},
	{"IN", KwIn},
	{"INDEX", KwIndex},
	{"INNER", KwInner},
	{"INSERT", KwInsert},
	{"INTERSECT", KwIntersect},
	{"INTO", KwInto},
	{"IS", KwIs},
	{"JOIN", KwJoin},
	{"KEY", KwKey},
	{"KILL", KwKill},
	{"LEFT", KwLeft},
	{"LIKE", KwLike},
	{"MERGE", KwMerge},
	{"NOT", KwNot},
	{"NULL", KwNull},
	{"NULLIF", KwNullif},
	{"OF", KwOf},
	{"OFF", KwOff},
	{"ON", KwOn},
	{"OPEN", KwOpen},
	{"OPTION", KwOption},
	{"OR", KwOr},
	{"ORDER", KwOrder},
	{"OUTER", KwOuter},
	{"OVER", KwOver},
	{"PERCENT", KwPercent},
	{"PIVOT", KwPivot},
	{"PRIMARY", KwPrimary},
	{"PRINT", KwPrint},
	{"PROC", KwProc},
	{"PROCEDURE", KwProcedure},
	{"RAISERROR", KwRaiserror},
	{"READ", KwRead},
	{"REFERENCES", KwReferences},
	{"RETURN", KwReturn},
	{"REVERT", KwRevert},
	{"REVOKE", KwRevoke},
	{"RIGHT", KwRight},
	{"ROLLBACK", KwRollback},
	{"ROWCOUNT", KwRowcount},
	{"SAVE", KwSave},
	{"SCHEMA", KwSchema},
	{"SELECT", KwSelect},
	{"SESSION_USER", KwSessionUser},
	{"SET", KwSet},
	{"SOME", KwSome},
	{"SYSTEM_USER", KwSystemUser},
	{"TABLE", KwTable},
	{"THEN", KwThen},
	{"TO", KwTo},
	{"TOP", KwTop},
	{"TRAN", KwTran},
	{"TRANSACTION", KwTransaction},
	{"TRIGGER", KwTrigger},
	{"TRUNCATE", KwTruncate},
	{"TRY_CONVERT", KwTryConvert},
	{"UNION", KwUnion},
	{"UNIQUE", KwUnique},
	{"UNPIVOT", KwUnpivot},
	{"UPDATE", KwUpdate},
	{"USE", KwUse},
	{"USER", KwUser},
	{"VALUES", KwValues},
	{"VIEW", KwView},
	{"WAITFOR", KwWaitfor},
	{"WHEN", KwWhen},
	{"WHERE", KwWhere},
	{"WHILE", KwWhile},
	{"WITH", KwWith},
}
