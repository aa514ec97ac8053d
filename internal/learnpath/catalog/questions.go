package catalog

// The diagnostic question pool: 5 questions per roadmap topic.
// Question ids are stable; user answer history references them.
var questionPool = []Question{
	// Arrays & Strings
	{ID: 1, TopicID: 1, Topic: "Arrays & Strings", Text: "What is the time complexity of accessing an element in an array by index?", Options: []string{"O(1)", "O(n)", "O(log n)", "O(n²)"}, CorrectIndex: 0, Difficulty: "easy"},
	{ID: 2, TopicID: 1, Topic: "Arrays & Strings", Text: "Which technique is used to find pairs in a sorted array that sum to a target?", Options: []string{"Binary Search", "Two Pointers", "Sliding Window", "Recursion"}, CorrectIndex: 1, Difficulty: "medium"},
	{ID: 3, TopicID: 1, Topic: "Arrays & Strings", Text: "What is the sliding window technique best used for?", Options: []string{"Finding pairs", "Contiguous subarray problems", "Sorting", "Tree traversal"}, CorrectIndex: 1, Difficulty: "medium"},
	{ID: 4, TopicID: 1, Topic: "Arrays & Strings", Text: "What algorithm finds maximum subarray sum in O(n)?", Options: []string{"Merge Sort", "Quick Sort", "Kadane's Algorithm", "Two Pointers"}, CorrectIndex: 2, Difficulty: "medium"},
	{ID: 5, TopicID: 1, Topic: "Arrays & Strings", Text: "What is the space complexity of prefix sum array?", Options: []string{"O(1)", "O(n)", "O(log n)", "O(n²)"}, CorrectIndex: 1, Difficulty: "easy"},

	// Linked Lists
	{ID: 6, TopicID: 2, Topic: "Linked Lists", Text: "What is the time complexity of inserting at the head of a singly linked list?", Options: []string{"O(n)", "O(1)", "O(log n)", "O(n²)"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 7, TopicID: 2, Topic: "Linked Lists", Text: "Which algorithm detects a cycle in a linked list in O(1) space?", Options: []string{"Hash Set", "Floyd's Cycle Detection", "BFS", "DFS"}, CorrectIndex: 1, Difficulty: "medium"},
	{ID: 8, TopicID: 2, Topic: "Linked Lists", Text: "How many pointers are typically needed to reverse a linked list iteratively?", Options: []string{"1", "2", "3", "4"}, CorrectIndex: 2, Difficulty: "easy"},
	{ID: 9, TopicID: 2, Topic: "Linked Lists", Text: "What is the time complexity of finding the middle of a linked list using fast/slow pointers?", Options: []string{"O(n)", "O(n/2)", "O(log n)", "O(1)"}, CorrectIndex: 0, Difficulty: "medium"},
	{ID: 10, TopicID: 2, Topic: "Linked Lists", Text: "In a doubly linked list, each node has how many pointers?", Options: []string{"1", "2", "3", "4"}, CorrectIndex: 1, Difficulty: "easy"},

	// Stacks & Queues
	{ID: 11, TopicID: 3, Topic: "Stacks & Queues", Text: "Which data structure is used to implement function calls in recursion?", Options: []string{"Queue", "Stack", "Array", "Tree"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 12, TopicID: 3, Topic: "Stacks & Queues", Text: "What is the output of pushing 1, 2, 3 and then popping twice from a stack?", Options: []string{"1, 2", "3, 2", "2, 3", "1, 3"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 13, TopicID: 3, Topic: "Stacks & Queues", Text: "Monotonic stack is used to find?", Options: []string{"Minimum element", "Next greater element", "Sorted order", "Middle element"}, CorrectIndex: 1, Difficulty: "medium"},
	{ID: 14, TopicID: 3, Topic: "Stacks & Queues", Text: "Which data structure follows FIFO principle?", Options: []string{"Stack", "Queue", "Tree", "Graph"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 15, TopicID: 3, Topic: "Stacks & Queues", Text: "What problem can be solved using a stack?", Options: []string{"Shortest path", "Balanced parentheses", "Sorting", "Finding median"}, CorrectIndex: 1, Difficulty: "easy"},

	// Recursion & Backtracking
	{ID: 16, TopicID: 4, Topic: "Recursion & Backtracking", Text: "What is the base case in calculating factorial recursively?", Options: []string{"n == 1", "n == 0 or n == 1", "n < 0", "No base case needed"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 17, TopicID: 4, Topic: "Recursion & Backtracking", Text: "What is the time complexity of recursive Fibonacci without memoization?", Options: []string{"O(n)", "O(n²)", "O(2^n)", "O(log n)"}, CorrectIndex: 2, Difficulty: "medium"},
	{ID: 18, TopicID: 4, Topic: "Recursion & Backtracking", Text: "In backtracking, what do we do after exploring a path?", Options: []string{"Continue forward", "Undo the choice", "Start over", "Skip it"}, CorrectIndex: 1, Difficulty: "medium"},
	{ID: 19, TopicID: 4, Topic: "Recursion & Backtracking", Text: "How many subsets does a set of n elements have?", Options: []string{"n", "n²", "2^n", "n!"}, CorrectIndex: 2, Difficulty: "medium"},
	{ID: 20, TopicID: 4, Topic: "Recursion & Backtracking", Text: "N-Queens problem is solved using which technique?", Options: []string{"Dynamic Programming", "Greedy", "Backtracking", "Divide and Conquer"}, CorrectIndex: 2, Difficulty: "medium"},

	// Trees & BST
	{ID: 21, TopicID: 5, Topic: "Trees & BST", Text: "In a Binary Search Tree, where are smaller elements stored?", Options: []string{"Right subtree", "Left subtree", "Root", "Anywhere"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 22, TopicID: 5, Topic: "Trees & BST", Text: "Which traversal gives sorted order for a BST?", Options: []string{"Preorder", "Inorder", "Postorder", "Level order"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 23, TopicID: 5, Topic: "Trees & BST", Text: "What is the time complexity of search in a balanced BST?", Options: []string{"O(n)", "O(log n)", "O(n²)", "O(1)"}, CorrectIndex: 1, Difficulty: "medium"},
	{ID: 24, TopicID: 5, Topic: "Trees & BST", Text: "Level order traversal uses which data structure?", Options: []string{"Stack", "Queue", "Array", "Linked List"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 25, TopicID: 5, Topic: "Trees & BST", Text: "What is the height of a tree with only root node?", Options: []string{"0", "1", "-1", "Undefined"}, CorrectIndex: 0, Difficulty: "easy"},

	// Graphs
	{ID: 26, TopicID: 6, Topic: "Graphs", Text: "Which algorithm is used for shortest path in an unweighted graph?", Options: []string{"DFS", "BFS", "Dijkstra", "Bellman-Ford"}, CorrectIndex: 1, Difficulty: "medium"},
	{ID: 27, TopicID: 6, Topic: "Graphs", Text: "What is the space complexity of adjacency matrix?", Options: []string{"O(V)", "O(E)", "O(V²)", "O(V+E)"}, CorrectIndex: 2, Difficulty: "medium"},
	{ID: 28, TopicID: 6, Topic: "Graphs", Text: "Which traversal can detect cycles in a directed graph?", Options: []string{"BFS only", "DFS only", "Both BFS and DFS", "Neither"}, CorrectIndex: 2, Difficulty: "medium"},
	{ID: 29, TopicID: 6, Topic: "Graphs", Text: "Topological sort is applicable to?", Options: []string{"Any graph", "DAG only", "Cyclic graphs", "Trees only"}, CorrectIndex: 1, Difficulty: "medium"},
	{ID: 30, TopicID: 6, Topic: "Graphs", Text: "BFS uses which data structure?", Options: []string{"Stack", "Queue", "Priority Queue", "Deque"}, CorrectIndex: 1, Difficulty: "easy"},

	// Sorting
	{ID: 31, TopicID: 7, Topic: "Sorting", Text: "What is the average time complexity of Quick Sort?", Options: []string{"O(n)", "O(n log n)", "O(n²)", "O(log n)"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 32, TopicID: 7, Topic: "Sorting", Text: "Which sorting algorithm is stable?", Options: []string{"Quick Sort", "Heap Sort", "Merge Sort", "Selection Sort"}, CorrectIndex: 2, Difficulty: "medium"},
	{ID: 33, TopicID: 7, Topic: "Sorting", Text: "What is the space complexity of Merge Sort?", Options: []string{"O(1)", "O(log n)", "O(n)", "O(n²)"}, CorrectIndex: 2, Difficulty: "medium"},
	{ID: 34, TopicID: 7, Topic: "Sorting", Text: "Which sorting algorithm has worst case O(n²)?", Options: []string{"Merge Sort", "Heap Sort", "Quick Sort", "Counting Sort"}, CorrectIndex: 2, Difficulty: "medium"},
	{ID: 35, TopicID: 7, Topic: "Sorting", Text: "Counting Sort works best when?", Options: []string{"Data is random", "Range of values is small", "Data is large", "Data is sorted"}, CorrectIndex: 1, Difficulty: "medium"},

	// Dynamic Programming
	{ID: 36, TopicID: 8, Topic: "Dynamic Programming", Text: "DP is recursion plus?", Options: []string{"Iteration", "Memoization", "Sorting", "Hashing"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 37, TopicID: 8, Topic: "Dynamic Programming", Text: "What are the two approaches to DP?", Options: []string{"BFS and DFS", "Top-down and Bottom-up", "Greedy and Brute force", "Recursive and Iterative"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 38, TopicID: 8, Topic: "Dynamic Programming", Text: "LCS stands for?", Options: []string{"Longest Common Substring", "Longest Common Subsequence", "Least Common Subsequence", "Linear Common Sequence"}, CorrectIndex: 1, Difficulty: "easy"},
	{ID: 39, TopicID: 8, Topic: "Dynamic Programming", Text: "What is the time complexity of LCS using DP?", Options: []string{"O(n)", "O(n²)", "O(mn)", "O(2^n)"}, CorrectIndex: 2, Difficulty: "medium"},
	{ID: 40, TopicID: 8, Topic: "Dynamic Programming", Text: "0/1 Knapsack can be solved using?", Options: []string{"Greedy", "DP", "Divide and Conquer", "Both Greedy and DP"}, CorrectIndex: 1, Difficulty: "medium"},
}
